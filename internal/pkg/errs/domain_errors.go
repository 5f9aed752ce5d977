package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Collection errors
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionPrivate  = errors.New("collection is private")
	ErrCollectionLocked   = errors.New("collection is locked")
	ErrNotCollectionOwner = errors.New("not the collection owner")
	ErrDuplicateItem      = errors.New("item already in collection")
	ErrItemNotFound       = errors.New("item not found in collection")

	// Participant errors
	ErrAlreadyRequested    = errors.New("join already requested")
	ErrCollectionFull      = errors.New("collection is full")
	ErrCapacityExceeded    = errors.New("approved member capacity exceeded")
	ErrNotAMember          = errors.New("not an approved member")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrCannotRemoveOwner   = errors.New("owner cannot be removed")

	// Payment errors
	ErrProductNotFound     = errors.New("product not found")
	ErrCollectionNotLocked = errors.New("collection is not locked yet")
	ErrNoItems             = errors.New("collection has no items")
	ErrAlreadyPaid         = errors.New("beneficiary already paid for this collection")
	ErrAddressNotFound     = errors.New("address not found")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")

	// Settlement errors
	ErrMissingMetadata = errors.New("payment event metadata incomplete")
	ErrAlreadySettled  = errors.New("payment already settled")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
