package store

import "errors"

var (
	ErrClientExists        = errors.New("client already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrStaleCheckpoint     = errors.New("books changed since they were read")
)
