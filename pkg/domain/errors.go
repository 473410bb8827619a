package domain

import "errors"

// ErrInvalidParameter is returned when a distribution parameter is negative or not finite.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

// ErrDomain is returned when parameters are individually valid but describe no distribution
// (e.g. a gamma trait with zero mean and positive variance).
var ErrDomain = errors.New("parameters outside distribution domain")

// ErrInvalidOccupancy is returned when the occupancy input is not an array of
// non-negative numbers.
var ErrInvalidOccupancy = errors.New("invalid occupancy")

// ErrUnknownDistribution is returned when a spec names a distribution that has no sampler.
var ErrUnknownDistribution = errors.New("unknown distribution")

// ErrTraitNotFound is returned when a trait name cannot be found in a registry.
var ErrTraitNotFound = errors.New("trait not found")

// ErrDuplicateTrait is returned when registering a trait whose name is already taken.
var ErrDuplicateTrait = errors.New("duplicate trait")
