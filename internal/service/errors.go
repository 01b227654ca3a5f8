package service

import "errors"

var (
	ErrValidation       = errors.New("validation")        // 400
	ErrNotFound         = errors.New("not found")         // 404
	ErrConflict         = errors.New("conflict")          // 409
	ErrAlreadyPurchased = errors.New("already purchased") // 409, safe to treat as owned
	ErrPriceMismatch    = errors.New("price mismatch")    // 422
	ErrUnauthorized     = errors.New("unauthorized")      // 401
)
