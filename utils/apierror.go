package utils

// Error taxonomy shared by services and controllers. Controllers map
// these onto HTTP status codes; anything else becomes a 500.

// A required field is missing or has a value outside its vocabulary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// A referenced row does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// The operation's state precondition does not hold (e.g. the food is
// not exactly at its 3rd exposure in the trailing week).
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string { return e.Msg }
