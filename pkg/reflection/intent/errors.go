package intent

import "errors"

var (
	errNoArray      = errors.New("no JSON array found in response")
	errEmptyArray   = errors.New("decomposition returned no usable needs")
	errTooManyNeeds = errors.New("decomposition returned more needs than allowed")
)
