package domain

type Article struct {
	Slug     string `db:"slug"`
	Title    string `db:"title"`
	AuthorID int64  `db:"author_id"`
}

type Author struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
