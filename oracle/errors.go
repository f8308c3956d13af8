package oracle

import "errors"

// ErrEmptyAddr indicates NewSocket was given an empty address.
var ErrEmptyAddr = errors.New("oracle: socket address must not be empty")
