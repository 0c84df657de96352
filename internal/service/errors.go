package service

import (
	"errors"
	"fmt"
)

var ErrDataAccess = errors.New("data access failed")

// DataAccessError is the only error kind report operations return. It matches
// ErrDataAccess with errors.Is and unwraps to the store error.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}
