package errors

import "errors"

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("invalid waybill status")
	ErrIllegalTransition = errors.New("illegal status transition")
)
