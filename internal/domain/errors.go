package domain

import "errors"

var (
	// ErrStoreUnavailable is returned when the baseline store cannot be
	// reached; the pipeline refuses to run in that case.
	ErrStoreUnavailable = errors.New("baseline store unavailable")

	// ErrNoProducts is returned when the crawl produced zero records
	ErrNoProducts = errors.New("no products found in catalog")

	// ErrShopAPIFailure is returned when a shop search API request fails
	ErrShopAPIFailure = errors.New("shop search API request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNotifyFailure is returned when a notification cannot be delivered
	ErrNotifyFailure = errors.New("notification delivery failed")
)
