package service

import "errors"

// Sentinel errors mapped to HTTP status codes by the REST layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	// ErrConflict covers duplicate (student, date, start_time) classes
	// on single creation. Batch materialization never returns it; a
	// duplicate there is a per-item skip.
	ErrConflict = errors.New("conflict")
)
