package routing

import (
	"errors"

	"github.com/sbalogh/rttr/core/method"
)

// Error types.
var (
	// ErrMethodNotFound is returned when no registered method has the requested name.
	ErrMethodNotFound = errors.New("method not found")

	// ErrMethodAlreadyDefined is returned when two methods with the same name
	// accept the same number of arguments.
	ErrMethodAlreadyDefined = errors.New("method has already been defined")
)

// Router defines the interface for querying registered methods and routing calls.
type Router interface {
	// Check validates the provided arguments for the specified method.
	// It returns an error if the validation fails.
	Check(method string, args ...string) error

	// Invoke calls the specified method with the provided arguments.
	// It returns a byte slice of response and an error if the invocation fails.
	Invoke(method string, args ...string) ([]byte, error)

	// Methods returns a range over all registered methods, sorted by name.
	Methods() method.Range
}
