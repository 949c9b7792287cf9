package cwumee

import (
	"errors"
	"fmt"
)

// Kinds of bridge failures. Every error returned by Query and Msg is a
// *BridgeError matching exactly one of them with errors.Is.
var (
	// ErrInvalidEnvelope is returned before sending an envelope whose
	// discriminant is not in the catalog.
	ErrInvalidEnvelope = errors.New("invalid envelope")
	ErrEncode          = errors.New("cannot encode request")
	ErrDecode          = errors.New("cannot decode response")
	// ErrSystem means the host could not serve the request at all. The cause is
	// the types.SystemError the host reported.
	ErrSystem = errors.New("system error")
	// ErrRemote means the native module rejected the request. Detail holds the
	// module's message verbatim.
	ErrRemote = errors.New("remote error")
)

// BridgeError is the error of a single bridge call.
type BridgeError struct {
	Kind error
	// Variant is the canonical name of the request, empty for passthrough requests.
	Variant string
	Detail  string
	Cause   error
}

func (e *BridgeError) Error() string {
	msg := e.Kind.Error()
	if e.Variant != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Variant)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *BridgeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newBridgeError(kind error, variant, detail string, cause error) *BridgeError {
	return &BridgeError{Kind: kind, Variant: variant, Detail: detail, Cause: cause}
}

// outcome is the metrics label of an error kind.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidEnvelope):
		return "invalid_envelope"
	case errors.Is(err, ErrEncode):
		return "encode"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrSystem):
		return "system"
	case errors.Is(err, ErrRemote):
		return "remote"
	default:
		return "unknown"
	}
}
