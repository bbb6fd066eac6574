package model

import "errors"

// ErrorKind classifies why a report run failed.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindQuery         ErrorKind = "query"
	KindDelivery      ErrorKind = "delivery"
	KindUnexpected    ErrorKind = "unexpected"
)

// Error carries the failure kind alongside the underlying cause, which is kept untouched.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind. A nil err yields nil.
func NewError(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or KindUnexpected.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// Failure describes a failed run for secondary notification channels.
type Failure struct {
	AccountID string    `json:"account_id,omitempty"`
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"message"`
	Date      string    `json:"date"`
}
