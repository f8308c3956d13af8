package equivalence

import "errors"

// ErrEmptyAlphabet is returned by New when called with an empty
// alphabet — no test word could ever be sampled.
var ErrEmptyAlphabet = errors.New("equivalence: alphabet must not be empty")
