package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is returned when a profile is missing a field a
// framework gate depends on. The engine fails fast instead of guessing
// regulatory applicability.
var ErrInvalidProfile = errors.New("invalid operator profile")

// ErrMalformedCatalog is returned by catalog validation when static data
// is internally inconsistent. It is raised at load time, never during a
// request.
var ErrMalformedCatalog = errors.New("malformed catalog")

// ProfileError wraps ErrInvalidProfile with the offending field.
type ProfileError struct {
	Field  string
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid operator profile: %s: %s", e.Field, e.Reason)
}

func (e *ProfileError) Unwrap() error { return ErrInvalidProfile }

// CatalogError wraps ErrMalformedCatalog with the framework and
// requirement that failed validation.
type CatalogError struct {
	Framework   string
	Requirement string
	Reason      string
}

func (e *CatalogError) Error() string {
	if e.Requirement == "" {
		return fmt.Sprintf("malformed catalog %s: %s", e.Framework, e.Reason)
	}
	return fmt.Sprintf("malformed catalog %s: requirement %s: %s", e.Framework, e.Requirement, e.Reason)
}

func (e *CatalogError) Unwrap() error { return ErrMalformedCatalog }

// validateForGates checks the discriminant fields every framework gate
// reads. Called once by Aggregate before any per-framework work.
func validateForGates(p *OperatorProfile) error {
	if p == nil {
		return &ProfileError{Field: "profile", Reason: "nil"}
	}
	if p.EstablishmentCountry == "" {
		return &ProfileError{Field: "establishment_country", Reason: "required to evaluate framework applicability"}
	}
	return nil
}
