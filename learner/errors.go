package learner

import "errors"

// ErrEmptyAlphabet is returned by Learn when called with an empty
// alphabet — no membership query could ever be formed.
var ErrEmptyAlphabet = errors.New("learner: alphabet must not be empty")

// ErrNilOracle is returned by Learn when called with a nil Oracle.
var ErrNilOracle = errors.New("learner: oracle must not be nil")

// ErrMaxRoundsExceeded is returned by Learn if the outer fixed point has
// not converged after Config.maxRounds equivalence rounds.
var ErrMaxRoundsExceeded = errors.New("learner: exceeded maximum rounds without converging")
