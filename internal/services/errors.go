package services

import "errors"

var (
	ErrRepNotFound   = errors.New("sales rep not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMissingDealID = errors.New("deal id is required")
)
