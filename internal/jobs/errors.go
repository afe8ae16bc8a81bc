package jobs

import "fmt"

// CatalogError represents an error reading or decoding a job catalog file
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// ListingError describes one catalog entry rejected during validation
type ListingError struct {
	Index int
	ID    string
	Cause error
}

func (e *ListingError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("listing %d (%s): %v", e.Index, e.ID, e.Cause)
	}
	return fmt.Sprintf("listing %d: %v", e.Index, e.Cause)
}

func (e *ListingError) Unwrap() error {
	return e.Cause
}
