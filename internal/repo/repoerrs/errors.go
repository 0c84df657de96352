package repoerrs

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown store strategy")
)
