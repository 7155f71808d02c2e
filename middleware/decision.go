package middleware

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingCredential means no bearer token could be extracted
	ErrMissingCredential = errors.New("missing credential")

	// ErrInvalidCredential means a token was present but failed verification
	ErrInvalidCredential = errors.New("invalid credential")
)

// Response messages written for rejected requests
const (
	MessageNoToken      = "Access denied. No token provided."
	MessageInvalidToken = "Invalid token. Please Signin"
)

// Decision is the outcome of authenticating one request: either proceed with
// an identity or reject with a status and message.
type Decision struct {
	allowed  bool
	identity Identity
	status   int
	message  string
	err      error
}

// Proceed returns an accepting decision carrying identity
func Proceed(identity Identity) Decision {
	return Decision{allowed: true, identity: identity}
}

// Reject returns a rejecting decision
func Reject(status int, message string, err error) Decision {
	return Decision{status: status, message: message, err: err}
}

func missingCredential() Decision {
	return Reject(http.StatusUnauthorized, MessageNoToken, ErrMissingCredential)
}

func invalidCredential() Decision {
	return Reject(http.StatusUnauthorized, MessageInvalidToken, ErrInvalidCredential)
}

// Allowed reports whether the request may proceed
func (d Decision) Allowed() bool { return d.allowed }

// Identity returns the decoded identity of an accepting decision
func (d Decision) Identity() Identity { return d.identity }

// Status returns the HTTP status of a rejecting decision
func (d Decision) Status() int { return d.status }

// Message returns the response message of a rejecting decision
func (d Decision) Message() string { return d.message }

// Err returns ErrMissingCredential or ErrInvalidCredential for rejections, nil otherwise
func (d Decision) Err() error { return d.err }
