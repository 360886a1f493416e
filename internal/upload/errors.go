package upload

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Sentinel errors for errors.Is checks, one per failure kind.
	ErrFileNotFound    = errors.New("file not found")
	ErrTransport       = errors.New("transport error")
	ErrInvalidResponse = errors.New("invalid response")
	ErrServer          = errors.New("server error")
)

// Kind classifies why an attempt failed to produce an Outcome.
type Kind int

const (
	KindFileNotFound Kind = iota + 1
	KindTransport
	KindInvalidResponse
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file_not_found"
	case KindTransport:
		return "transport"
	case KindInvalidResponse:
		return "invalid_response"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindFileNotFound:
		return ErrFileNotFound
	case KindTransport:
		return ErrTransport
	case KindInvalidResponse:
		return ErrInvalidResponse
	case KindServer:
		return ErrServer
	default:
		return nil
	}
}

// Failure is returned whenever an upload attempt could not obtain a valid
// Outcome. Every error returned by Client.Upload and Retrier.Do is a *Failure.
type Failure struct {
	Kind        Kind
	Path        string
	Status      int    // HTTP status, KindTransport only
	Code        uint64 // envelope statusCode, KindServer only
	Description string
	Err         error // underlying cause, if any
}

func (f *Failure) Error() string {
	switch f.Kind {
	case KindFileNotFound:
		if f.Err != nil {
			return fmt.Sprintf("file not found: %s: %v", f.Path, f.Err)
		}
		return "file not found: " + f.Path
	case KindTransport:
		if f.Status > 0 {
			return fmt.Sprintf("HTTP error: %d %s", f.Status, http.StatusText(f.Status))
		}
		return fmt.Sprintf("HTTP error: %v", f.Err)
	case KindInvalidResponse:
		if f.Err != nil {
			return fmt.Sprintf("invalid response: %s: %v", f.Description, f.Err)
		}
		return "invalid response: " + f.Description
	case KindServer:
		return fmt.Sprintf("server error (code %d): %s", f.Code, f.Description)
	default:
		return fmt.Sprintf("upload failed: %v", f.Err)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (f *Failure) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := f.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}
	return errs
}

// AsFailure converts err into a *Failure, wrapping foreign errors as
// transport failures.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: KindTransport, Err: err}
}
