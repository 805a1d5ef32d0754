package domain

import "errors"

// ErrInvalidQuery indicates that a query cannot be answered as given.
var ErrInvalidQuery = errors.New("invalid query")

// ErrInvalidSolveRequest indicates that a solve request failed validation.
var ErrInvalidSolveRequest = errors.New("invalid solve request")

// ErrInvalidStageInput indicates that a pipeline stage received malformed input.
var ErrInvalidStageInput = errors.New("invalid stage input")

// ErrInvalidExample indicates that a dataset record could not be decoded as an example.
var ErrInvalidExample = errors.New("invalid example")
