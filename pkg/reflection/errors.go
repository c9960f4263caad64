package reflection

import "errors"

// Hard failure classes of the pipeline. Soft failures (decomposition,
// HyDE expansion) never surface; they fall back to the raw input locally.
var (
	// ErrHardRetrieval: embedding or search failed entirely, or no angle
	// returned candidates. Not retried server-side.
	ErrHardRetrieval = errors.New("verse retrieval failed")

	// ErrSelectionFormat: the selection response did not parse or broke
	// the required-field contract.
	ErrSelectionFormat = errors.New("selection response malformed")

	// ErrEmptyResult: no selected identifier survived validation.
	ErrEmptyResult = errors.New("no verse selection survived validation")
)
