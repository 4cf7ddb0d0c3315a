package model

import "errors"

// Domain errors. Services wrap these with context; handlers map them to
// HTTP status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyDecided     = errors.New("request already decided")
	ErrScheduleConflict   = errors.New("session overlaps an approved training")
	ErrInsufficientPoints = errors.New("not enough points for this reward")
	ErrRewardOutOfStock   = errors.New("reward is out of stock")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateDocument  = errors.New("document number already exists")
	ErrDuplicateCode      = errors.New("product code already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
