package flows

import (
	"context"
	"strings"

	"github.com/podstream/podstream-cli/internal/api"
	"github.com/podstream/podstream-cli/internal/logging"
	"github.com/podstream/podstream-cli/internal/notify"
)

// ResetState is the discriminated state of the password reset flow.
type ResetState int

const (
	ResetCollectEmail ResetState = iota
	ResetOTPRequested
	ResetOTPEntry
	ResetOTPVerified
	ResetCollectPassword
	ResetSubmitting
	ResetDone
	ResetFailed
)

func (s ResetState) String() string {
	switch s {
	case ResetCollectEmail:
		return "collect_email"
	case ResetOTPRequested:
		return "otp_requested"
	case ResetOTPEntry:
		return "otp_entry"
	case ResetOTPVerified:
		return "otp_verified"
	case ResetCollectPassword:
		return "collect_password"
	case ResetSubmitting:
		return "submitting"
	case ResetDone:
		return "done"
	case ResetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResetEvent drives transitions of the password reset flow.
type ResetEvent int

const (
	ResetEventRequestCode ResetEvent = iota
	ResetEventCodeSent
	ResetEventRequestFailed
	ResetEventCodeVerified
	ResetEventCollectPassword
	ResetEventSubmit
	ResetEventSucceeded
	ResetEventRejected
	ResetEventTransportFailed
	ResetEventErrored
)

// NextResetState is the pure transition function of the password reset
// state machine. Events that are illegal in the current state leave it
// unchanged.
func NextResetState(s ResetState, e ResetEvent) ResetState {
	switch s {
	case ResetCollectEmail:
		if e == ResetEventRequestCode {
			return ResetOTPRequested
		}
	case ResetOTPRequested:
		switch e {
		case ResetEventCodeSent:
			return ResetOTPEntry
		case ResetEventRequestFailed:
			return ResetCollectEmail
		}
	case ResetOTPEntry:
		if e == ResetEventCodeVerified {
			return ResetOTPVerified
		}
	case ResetOTPVerified:
		if e == ResetEventCollectPassword {
			return ResetCollectPassword
		}
	case ResetCollectPassword:
		if e == ResetEventSubmit {
			return ResetSubmitting
		}
	case ResetSubmitting:
		switch e {
		case ResetEventSucceeded:
			return ResetDone
		case ResetEventRejected:
			return ResetOTPEntry
		case ResetEventTransportFailed:
			return ResetCollectEmail
		case ResetEventErrored:
			return ResetFailed
		}
	}
	return s
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetSubmission struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ResetOTP string `json:"resetOtp"`
}

// ResetFlow walks the user from an email address through an OTP challenge
// to a new password: request code, verify code, collect and validate the
// replacement password, submit.
type ResetFlow struct {
	api      api.Client
	notes    notify.Notifier
	verifier Verifier
	log      logging.Logger

	state       ResetState
	email       string
	emailNotice string
	code        string
	newPassword string
	confirmed   string
	notice      string
	challenge   *Challenge

	// gen invalidates in-flight responses after a close
	gen uint64
}

func NewResetFlow(client api.Client, notes notify.Notifier, verifier Verifier, log logging.Logger) *ResetFlow {
	return &ResetFlow{api: client, notes: notes, verifier: verifier, log: log, state: ResetCollectEmail}
}

func (f *ResetFlow) State() ResetState { return f.state }

func (f *ResetFlow) SetEmail(email string) {
	f.email = email
	f.emailNotice = ""
}

// EmailNotice is the inline message next to the email field.
func (f *ResetFlow) EmailNotice() string { return f.emailNotice }

// Notice is the inline message below the password fields.
func (f *ResetFlow) Notice() string { return f.notice }

// Challenge returns the active OTP challenge, or nil outside OTP entry.
func (f *ResetFlow) Challenge() *Challenge {
	if f.state != ResetOTPEntry {
		return nil
	}
	return f.challenge
}

// CanRequestCode reports whether the request-OTP control is enabled. The
// ResetOTPRequested state doubles as the in-flight gate: a second request
// cannot start until the first resolves.
func (f *ResetFlow) CanRequestCode() bool {
	return f.state == ResetCollectEmail && f.email != ""
}

// RequestCode asks the backend to send a passcode to the entered email.
func (f *ResetFlow) RequestCode(ctx context.Context) {
	if !f.CanRequestCode() {
		return
	}

	f.apply(ResetEventRequestCode)
	f.gen++
	gen := f.gen

	res, err := f.api.Post(ctx, "/user/reset", resetRequest{Email: strings.TrimSpace(f.email)})

	if f.gen != gen || f.state != ResetOTPRequested {
		f.log.Debug(ctx, "dropping stale reset-code response")
		return
	}

	if err != nil {
		f.log.Warn(ctx, "reset-code request failed", "err", err)
		f.apply(ResetEventRequestFailed)
		f.notes.Notify(noticeNetworkError, notify.SeverityError)
		return
	}

	switch res.Status {
	case api.StatusSuccess:
		f.emailNotice = ""
		f.challenge = NewChallenge(f.email, ReasonForgotPassword, f.verifier, f.codeVerified)
		f.apply(ResetEventCodeSent)
		f.notes.Notify("OTP sent to your email. Please check and verify.", notify.SeveritySuccess)

	case api.StatusInvalidCredentials:
		msg := res.Data.FirstError("User not found!")
		f.emailNotice = msg
		f.apply(ResetEventRequestFailed)
		f.notes.Notify(msg, notify.SeverityError)

	default:
		f.apply(ResetEventRequestFailed)
		f.notes.Notify(noticeServerError, notify.SeverityError)
	}
}

// VerifyCode submits a passcode to the active challenge. It returns whether
// the code was accepted; a non-nil error means the code could not be checked
// at all and the user may simply try again.
func (f *ResetFlow) VerifyCode(ctx context.Context, code string) (bool, error) {
	ch := f.Challenge()
	if ch == nil {
		return false, nil
	}
	return ch.Submit(ctx, code)
}

// codeVerified is the challenge callback; ignored unless the flow is still
// in OTP entry. The accepted code is retained because the final submission
// echoes it back to the server.
func (f *ResetFlow) codeVerified(_ context.Context, code string) {
	if f.state != ResetOTPEntry || f.challenge == nil {
		return
	}
	f.code = code
	f.apply(ResetEventCodeVerified)
	f.apply(ResetEventCollectPassword)
}

// SetNewPassword records the replacement password and refreshes the notice.
func (f *ResetFlow) SetNewPassword(pw string) {
	f.newPassword = pw
	f.refreshNotice()
}

// SetConfirmedPassword records the confirmation field and refreshes the
// notice.
func (f *ResetFlow) SetConfirmedPassword(pw string) {
	f.confirmed = pw
	f.refreshNotice()
}

// refreshNotice re-applies the continuous password validation: complexity
// first, then the confirmation match.
func (f *ResetFlow) refreshNotice() {
	f.notice = ""
	if f.newPassword == "" {
		return
	}
	if msg := ValidatePassword(f.newPassword); msg != "" {
		f.notice = msg
		return
	}
	if f.confirmed != "" && f.confirmed != f.newPassword {
		f.notice = noticePasswordMismatch
	}
}

// CanSubmit reports whether the reset submission is enabled: password
// collection is active, the new password satisfies the policy, and the
// confirmation matches exactly.
func (f *ResetFlow) CanSubmit() bool {
	return f.state == ResetCollectPassword &&
		ValidatePassword(f.newPassword) == "" &&
		f.confirmed == f.newPassword &&
		f.confirmed != ""
}

// Submit sends the reset request. Success finishes the flow and clears all
// flow-local fields; a validation failure returns to OTP entry for a retry;
// a transport failure falls back to the pre-OTP state.
func (f *ResetFlow) Submit(ctx context.Context) {
	if !f.CanSubmit() {
		return
	}

	f.apply(ResetEventSubmit)
	f.gen++
	gen := f.gen

	res, err := f.api.Put(ctx, "/user/reset",
		resetSubmission{Email: f.email, Password: f.confirmed, ResetOTP: f.code}, nil)

	if f.gen != gen || f.state != ResetSubmitting {
		f.log.Debug(ctx, "dropping stale reset response")
		return
	}

	if err != nil {
		f.log.Warn(ctx, "reset submission failed", "err", err)
		f.code = ""
		f.challenge = nil
		f.apply(ResetEventTransportFailed)
		f.notes.Notify(noticeNetworkError, notify.SeverityError)
		return
	}

	switch res.Status {
	case api.StatusSuccess:
		f.apply(ResetEventSucceeded)
		f.clearFields()
		f.notes.Notify("Password Reset Successfully", notify.SeveritySuccess)

	case api.StatusInvalidCredentials:
		// a fresh challenge: the previous code was consumed or rejected
		f.code = ""
		f.challenge = NewChallenge(f.email, ReasonForgotPassword, f.verifier, f.codeVerified)
		f.apply(ResetEventRejected)
		f.notes.Notify("OTP verification failed or invalid request.", notify.SeverityError)

	default:
		f.apply(ResetEventErrored)
		f.notes.Notify(noticeServerError, notify.SeverityError)
	}
}

// Close abandons the flow and resets all flow-local state. It has no server
// side effects and emits no notifications.
func (f *ResetFlow) Close() {
	f.gen++
	f.state = ResetCollectEmail
	f.clearFields()
}

func (f *ResetFlow) clearFields() {
	f.email = ""
	f.emailNotice = ""
	f.code = ""
	f.newPassword = ""
	f.confirmed = ""
	f.notice = ""
	f.challenge = nil
}

func (f *ResetFlow) apply(e ResetEvent) {
	f.state = NextResetState(f.state, e)
}
