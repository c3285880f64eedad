package admetlab2

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage indicates the command line is missing required arguments.
	ErrUsage = errors.New("missing arguments")
	// ErrEmptyCompound indicates the resolved compound is empty after trimming.
	ErrEmptyCompound = errors.New("input compound is empty")
	// ErrServiceStatus indicates the service answered with a non-2xx status.
	ErrServiceStatus = errors.New("unexpected status")
	// ErrInvalidResponse indicates the service body is not valid JSON.
	ErrInvalidResponse = errors.New("response is not valid JSON")
	// ErrResponseSchemaInvalid indicates the response does not satisfy the configured schema.
	ErrResponseSchemaInvalid = errors.New("response does not match schema")
	// ErrInvalidConfig indicates a configuration value is unusable.
	ErrInvalidConfig = errors.New("invalid config")
)

// Kind classifies a failure and selects the process exit status.
type Kind int

const (
	// KindUsage covers missing arguments, empty compounds and bad configuration.
	KindUsage Kind = iota + 1
	// KindService covers transport errors, timeouts, bad statuses and bad bodies.
	KindService
	// KindWrite covers failures persisting the output file.
	KindWrite
)

// ExitCode returns the process exit status for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindUsage:
		return 1
	case KindService:
		return 2
	case KindWrite:
		return 3
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindService:
		return "service"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failure tagged with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	switch e.Kind {
	case KindService:
		return fmt.Sprintf("Error calling ADMETLab2 service: %v", e.Err)
	case KindWrite:
		return fmt.Sprintf("Error writing output file: %v", e.Err)
	case KindUsage:
		if errors.Is(e.Err, ErrUsage) {
			return UsageText
		}

		return fmt.Sprintf("Error: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func serviceError(err error) error {
	return &Error{Kind: KindService, Err: err}
}

func writeError(err error) error {
	return &Error{Kind: KindWrite, Err: err}
}

// UsageError tags err as a usage failure.
func UsageError(err error) error {
	return &Error{Kind: KindUsage, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// ExitCode maps err to a process exit status. Untagged errors exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if kind, ok := KindOf(err); ok {
		return kind.ExitCode()
	}

	return 1
}
