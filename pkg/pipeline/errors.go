package pipeline

import "errors"

var (
	// ErrNoSuchFactory is returned by Registry.Make for unknown factory names.
	ErrNoSuchFactory = errors.New("pipeline: no such element factory")

	// ErrDuplicateName is returned when two elements of a pipeline share a name.
	ErrDuplicateName = errors.New("pipeline: duplicate element name")

	// ErrNotInPipeline is returned when linking an element that was not added.
	ErrNotInPipeline = errors.New("pipeline: element not in pipeline")

	// ErrCapsMismatch is returned when linked elements have no common caps.
	ErrCapsMismatch = errors.New("pipeline: caps do not intersect")

	// ErrAlreadyLinked is returned when a pad is linked twice.
	ErrAlreadyLinked = errors.New("pipeline: element already linked")

	// ErrNotLinked is returned when the pipeline is not a complete chain from
	// one source to one sink.
	ErrNotLinked = errors.New("pipeline: elements not linked into a chain")

	// ErrNoSuchProperty is returned for unknown property names.
	ErrNoSuchProperty = errors.New("pipeline: no such property")

	// ErrDropped is returned by a filter that consumed a buffer without
	// producing one. The pipeline skips the rest of the chain for that frame.
	ErrDropped = errors.New("pipeline: buffer dropped")
)
