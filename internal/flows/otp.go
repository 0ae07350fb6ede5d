package flows

import (
	"context"

	"github.com/podstream/podstream-cli/internal/api"
)

// Reason says why an OTP challenge was issued.
type Reason string

const (
	ReasonLogin          Reason = "LOGIN"
	ReasonForgotPassword Reason = "FORGOTPASSWORD"
)

// Verifier is the external collaborator that checks a one-time passcode for
// an email address. Passcode delivery and entry UI are outside this package.
type Verifier interface {
	Verify(ctx context.Context, email, code string) (bool, error)
}

// Challenge tracks a single OTP exchange on behalf of a parent flow. The
// parent learns about success (and the accepted code) through the onVerified
// callback; whether the signal is still relevant is the parent's decision
// (it may have been reset since the challenge was created).
type Challenge struct {
	email      string
	reason     Reason
	verifier   Verifier
	verified   bool
	onVerified func(context.Context, string)
}

// NewChallenge creates a challenge for email with the given reason.
// onVerified may be nil.
func NewChallenge(email string, reason Reason, verifier Verifier, onVerified func(context.Context, string)) *Challenge {
	return &Challenge{email: email, reason: reason, verifier: verifier, onVerified: onVerified}
}

func (c *Challenge) Email() string  { return c.email }
func (c *Challenge) Reason() Reason { return c.reason }

// Verified reports whether the passcode has been confirmed.
func (c *Challenge) Verified() bool { return c.verified }

// Submit checks code with the verifier. On the first success the challenge
// becomes verified and the parent is signalled exactly once; later calls are
// no-ops that report success. A verifier error means the code could not be
// checked at all, not that it was wrong.
func (c *Challenge) Submit(ctx context.Context, code string) (bool, error) {
	if c.verified {
		return true, nil
	}

	ok, err := c.verifier.Verify(ctx, c.email, code)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	c.verified = true
	if c.onVerified != nil {
		c.onVerified(ctx, code)
	}
	return true, nil
}

// APIVerifier verifies passcodes against the backend.
type APIVerifier struct {
	api api.Client
}

func NewAPIVerifier(client api.Client) *APIVerifier {
	return &APIVerifier{api: client}
}

type otpVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (v *APIVerifier) Verify(ctx context.Context, email, code string) (bool, error) {
	res, err := v.api.Post(ctx, "/user/otp/verify", otpVerifyRequest{Email: email, Code: code})
	if err != nil {
		return false, err
	}
	return res.Status == api.StatusSuccess, nil
}
