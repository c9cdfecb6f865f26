package store

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrOwnerImmutable   = errors.New("owner account cannot be removed")
	ErrEmailExists      = errors.New("email already exists")
)
