package utils

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCourseNotFound      = errors.New("course not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrNotPaymentOwner     = errors.New("payment belongs to another account")
	ErrBuyerRoleRequired   = errors.New("only students can purchase courses")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrDatabaseError       = errors.New("database error")
)
