// Package report turns aggregated news statistics into console text and runs
// the fixed sequence of reports.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Egor213/NewsReport/internal/domain"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
)

const dayLayout = "January 02, 2006"

var countWords = []string{
	"zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
}

type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Articles(n int, rows []domain.ArticleViews) error {
	return p.write(FormatArticles(n, rows))
}

func (p *Printer) Authors(rows []domain.AuthorViews) error {
	return p.write(FormatAuthors(rows))
}

func (p *Printer) ErrorDays(thresholdPct float64, rows []domain.DailyErrorRate) error {
	return p.write(FormatErrorDays(thresholdPct, rows))
}

// write emits a whole report at once so a failed query never leaves a header
// without its lines.
func (p *Printer) write(s string) error {
	if _, err := io.WriteString(p.w, s); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func FormatArticles(n int, rows []domain.ArticleViews) string {
	var b strings.Builder

	switch {
	case n <= 0:
		b.WriteString("\nThe most popular articles of all time are:\n\n")
	case n == 1:
		b.WriteString("\nThe most popular article of all time is:\n\n")
	default:
		fmt.Fprintf(&b, "\nThe most popular %s articles of all time are:\n\n", countWord(n))
	}

	for _, r := range rows {
		fmt.Fprintf(&b, "    \"%s\" - %d views\n", r.Title, r.Views)
	}
	b.WriteString("\n\n")

	return b.String()
}

func FormatAuthors(rows []domain.AuthorViews) string {
	var b strings.Builder

	b.WriteString("\nThe most popular authors of all time are:\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "    %s - %d views\n", r.Name, r.Views)
	}
	b.WriteString("\n\n")

	return b.String()
}

func FormatErrorDays(thresholdPct float64, rows []domain.DailyErrorRate) string {
	var b strings.Builder
	pct := strconv.FormatFloat(thresholdPct, 'f', -1, 64) + "%"

	switch len(rows) {
	case 0:
		fmt.Fprintf(&b, "\nThere were no days on which more than %s of requests led to errors!\n", pct)
	case 1:
		fmt.Fprintf(&b, "\nThe day on which more than %s of requests led to errors was:\n\n", pct)
	default:
		fmt.Fprintf(&b, "\nThe days on which more than %s of requests led to errors were:\n\n", pct)
	}

	for _, r := range rows {
		fmt.Fprintf(&b, "    %s - %.1f%% errors\n", r.Day.Format(dayLayout), r.ErrorPct)
	}
	b.WriteString("\n\n")

	return b.String()
}

func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return strconv.Itoa(n)
}
