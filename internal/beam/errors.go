package beam

import "errors"

// MinGridPoints is the smallest grid for which the interior stencil and the
// four boundary rows occupy distinct rows of the operator.
const MinGridPoints = 5

var (
	// ErrInvalidDomainSize is returned when the requested grid is too small
	// for the five-point stencil and boundary rows to be laid out.
	ErrInvalidDomainSize = errors.New("grid too small for fourth-order stencil")

	// ErrSingularMatrix is returned when the assembled operator has no
	// unique solution. This indicates an assembly bug, not a bad input.
	ErrSingularMatrix = errors.New("operator matrix is singular")

	// ErrNonFiniteInput is returned when a parameter is NaN or infinite.
	ErrNonFiniteInput = errors.New("non-finite input parameter")

	// ErrNonFiniteResult is returned when the solver produces NaN or Inf
	// entries instead of a usable deflection profile.
	ErrNonFiniteResult = errors.New("solution contains non-finite values")
)
