package api

import "context"

// StatusClass is the classification of a backend response. Flow logic
// branches on these values, never on raw HTTP status codes.
type StatusClass int

const (
	StatusSuccess StatusClass = iota
	StatusInvalidCredentials
	StatusAccountBlocked
	StatusVerificationRequired
	StatusServerError
	StatusNetworkFailure
)

func (s StatusClass) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidCredentials:
		return "invalid_credentials"
	case StatusAccountBlocked:
		return "account_blocked"
	case StatusVerificationRequired:
		return "verification_required"
	case StatusServerError:
		return "server_error"
	case StatusNetworkFailure:
		return "network_failure"
	default:
		return "unknown"
	}
}

// Payload is the decoded response body. Bodies are opaque JSON; only the
// fields the client acts on are mapped, everything else is ignored.
type Payload struct {
	Token   string   `json:"token"`
	Errors  []string `json:"errors"`
	Message string   `json:"message"`
	Name    string   `json:"name"`
}

// FirstError returns the first server-provided error message, or fallback
// when the error list is empty.
func (p Payload) FirstError(fallback string) string {
	if len(p.Errors) > 0 && p.Errors[0] != "" {
		return p.Errors[0]
	}
	return fallback
}

// Response is a classified backend response.
type Response struct {
	Status StatusClass
	Data   Payload
}

// Client is the network collaborator consumed by the flows. Implementations
// must classify transport status codes into StatusClass values and surface
// transport-level failures as errors wrapping ErrUnavailable.
type Client interface {
	Post(ctx context.Context, path string, body any) (*Response, error)
	Put(ctx context.Context, path string, body any, headers map[string]string) (*Response, error)
}

// Classify maps a raw HTTP status code to a StatusClass. Pure; kept separate
// from dispatch so it can be tested without side effects.
func Classify(code int) StatusClass {
	switch {
	case code >= 200 && code < 300:
		return StatusSuccess
	case code == 400:
		return StatusInvalidCredentials
	case code == 401:
		return StatusAccountBlocked
	case code == 402:
		return StatusVerificationRequired
	default:
		return StatusServerError
	}
}
