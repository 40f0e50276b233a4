package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrOpenDataset   = errors.New("open dataset failed")
	ErrReadDataset   = errors.New("read dataset failed")
	ErrMissingColumn = errors.New("required column missing")
)
