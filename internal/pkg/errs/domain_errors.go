package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrBusinessNotFound = errors.New("business not found")

	// Redemption errors
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidOffer       = errors.New("invalid offer")
	ErrNoStagedClaim      = errors.New("no staged claim")

	// Ledger errors
	ErrClaimNotFound = errors.New("claim not found")

	// Benefits errors
	ErrRewardNotFound    = errors.New("reward not found")
	ErrDiscountNotFound  = errors.New("discount not found")
	ErrPromotionNotFound = errors.New("promotion not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Storage errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
