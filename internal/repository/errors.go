package repository

import "errors"

// Errors shared by every store implementation.
var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateCode        = errors.New("code already exists")
	ErrDuplicateDestination = errors.New("destination already shortened")
)

// MaxListLimit caps how many links a single listing may return.
const MaxListLimit = 100

func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
