package services

import "errors"

// Common service-level errors
var (
	ErrInvalidEmployeeID = errors.New("employee id must be a positive integer")
	ErrInvalidMargin     = errors.New("profit margin must be between 0 and 30 percent")
	ErrInvalidAmountRange = errors.New("min amount must not exceed max amount")
)
