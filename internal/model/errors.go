package model

import "errors"

var (
	ErrInvalidKind     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date format")
)
