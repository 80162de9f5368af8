/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when a round is requested from a dataset with
// no appearance records.
var ErrEmptyDataset = errors.New("dataset contains no appearance records")

// DataError describes a failure caused by the contents of the dataset.
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
