/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"fmt"
)

// ParseError reports a source row that could not be turned into a record.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
