package flows

import (
	"context"
	"unicode/utf8"

	"github.com/podstream/podstream-cli/internal/api"
	"github.com/podstream/podstream-cli/internal/logging"
	"github.com/podstream/podstream-cli/internal/notify"
	"github.com/podstream/podstream-cli/internal/storage"
)

// LoginState is the discriminated state of the credential submission flow.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	LoginLoggedIn
	LoginBlocked
	LoginNeedsOTP
	LoginInvalidCredentials
	LoginNetworkError
)

func (s LoginState) String() string {
	switch s {
	case LoginIdle:
		return "idle"
	case LoginSubmitting:
		return "submitting"
	case LoginLoggedIn:
		return "logged_in"
	case LoginBlocked:
		return "blocked"
	case LoginNeedsOTP:
		return "needs_otp"
	case LoginInvalidCredentials:
		return "invalid_credentials"
	case LoginNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}

// LoginEvent drives transitions of the credential submission flow.
type LoginEvent int

const (
	LoginEventSubmit LoginEvent = iota
	LoginEventSucceeded
	LoginEventBlocked
	LoginEventVerificationRequired
	LoginEventRejected
	LoginEventFailed
	LoginEventOTPConfirmed
	LoginEventRetry
)

// NextLoginState is the pure transition function of the sign-in state
// machine. Events that are illegal in the current state leave it unchanged.
func NextLoginState(s LoginState, e LoginEvent) LoginState {
	switch s {
	case LoginIdle:
		if e == LoginEventSubmit {
			return LoginSubmitting
		}
	case LoginSubmitting:
		switch e {
		case LoginEventSucceeded:
			return LoginLoggedIn
		case LoginEventBlocked:
			return LoginBlocked
		case LoginEventVerificationRequired:
			return LoginNeedsOTP
		case LoginEventRejected:
			return LoginInvalidCredentials
		case LoginEventFailed:
			return LoginNetworkError
		case LoginEventRetry:
			// cancels the in-flight attempt; its response will be
			// dropped by the generation check
			return LoginIdle
		}
	case LoginNeedsOTP:
		switch e {
		case LoginEventOTPConfirmed:
			return LoginLoggedIn
		case LoginEventRetry:
			return LoginIdle
		}
	case LoginBlocked, LoginInvalidCredentials, LoginNetworkError:
		if e == LoginEventRetry {
			return LoginIdle
		}
	}
	return s
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginFlow orchestrates credential submission: local validation, the
// sign-in exchange, response classification, and the hand-off to an OTP
// challenge when the account still needs verification.
type LoginFlow struct {
	api      api.Client
	store    storage.Store
	notes    notify.Notifier
	verifier Verifier
	log      logging.Logger

	state            LoginState
	email            string
	password         string
	emailNotice      string
	credentialNotice string

	// pendingToken is the session token returned alongside a
	// VerificationRequired response; persisted only once the OTP
	// challenge confirms.
	pendingToken string
	challenge    *Challenge

	// gen invalidates in-flight responses after a retry or reset.
	gen uint64
}

func NewLoginFlow(client api.Client, store storage.Store, notes notify.Notifier, verifier Verifier, log logging.Logger) *LoginFlow {
	return &LoginFlow{api: client, store: store, notes: notes, verifier: verifier, log: log, state: LoginIdle}
}

func (f *LoginFlow) State() LoginState { return f.state }

// SetEmail records the email field and refreshes the inline email notice.
// The notice only appears once the user has typed something.
func (f *LoginFlow) SetEmail(email string) {
	f.email = email
	f.emailNotice = ""
	if email != "" && !IsEmail(email) {
		f.emailNotice = noticeInvalidEmail
	}
}

func (f *LoginFlow) SetPassword(pw string) { f.password = pw }

// EmailNotice is the inline validation message next to the email field.
func (f *LoginFlow) EmailNotice() string { return f.emailNotice }

// CredentialNotice is the inline message describing the last server
// rejection.
func (f *LoginFlow) CredentialNotice() string { return f.credentialNotice }

// CanSubmit reports whether the submit control is enabled: well-formed
// email, password longer than 5 characters, and no request in flight.
func (f *LoginFlow) CanSubmit() bool {
	return f.state != LoginSubmitting && IsEmail(f.email) && utf8.RuneCountInString(f.password) > 5
}

// Challenge returns the active OTP challenge, or nil when the flow is not
// awaiting verification.
func (f *LoginFlow) Challenge() *Challenge {
	if f.state != LoginNeedsOTP {
		return nil
	}
	return f.challenge
}

// Submit runs the sign-in exchange. Ineligible input is a no-op, except
// that a literally empty field surfaces the fill-all-fields notice. Every
// terminal transition emits exactly one notification; all failures resolve
// into a retryable state.
func (f *LoginFlow) Submit(ctx context.Context) {
	if !f.CanSubmit() {
		if f.email == "" || f.password == "" {
			f.notes.Notify(noticeFillAllFields, notify.SeverityError)
		}
		return
	}

	f.credentialNotice = ""
	f.apply(LoginEventSubmit)
	f.gen++
	gen := f.gen

	res, err := f.api.Post(ctx, "/user/signin", credentials{Email: f.email, Password: f.password})

	if f.gen != gen || f.state != LoginSubmitting {
		// the flow was reset while the request was in flight
		f.log.Debug(ctx, "dropping stale sign-in response")
		return
	}

	if err != nil {
		f.log.Warn(ctx, "sign-in request failed", "err", err)
		f.apply(LoginEventFailed)
		f.notes.Notify(noticeNetworkError, notify.SeverityError)
		return
	}

	switch res.Status {
	case api.StatusSuccess:
		if err := f.store.Set(ctx, storage.KeyToken, res.Data.Token); err != nil {
			f.log.Error(ctx, "failed to persist session token", "err", err)
		}
		f.apply(LoginEventSucceeded)
		f.notes.Notify("Logged In Successfully", notify.SeveritySuccess)

	case api.StatusAccountBlocked:
		f.credentialNotice = "Your account has been blocked. Please contact support."
		f.apply(LoginEventBlocked)
		f.notes.Notify("Account blocked", notify.SeverityError)

	case api.StatusVerificationRequired:
		f.pendingToken = res.Data.Token
		f.challenge = NewChallenge(f.email, ReasonLogin, f.verifier, f.confirmOTP)
		f.apply(LoginEventVerificationRequired)
		f.notes.Notify("Please verify your account", notify.SeveritySuccess)

	case api.StatusInvalidCredentials:
		msg := res.Data.FirstError("Invalid credentials")
		f.credentialNotice = msg
		f.apply(LoginEventRejected)
		f.notes.Notify(msg, notify.SeverityError)

	default:
		f.apply(LoginEventFailed)
		f.notes.Notify(noticeNetworkError, notify.SeverityError)
	}
}

// confirmOTP is the challenge callback. The guard on LoginNeedsOTP rejects
// stale signals from challenges that outlived a flow reset.
func (f *LoginFlow) confirmOTP(ctx context.Context, _ string) {
	if f.state != LoginNeedsOTP {
		return
	}

	if err := f.store.Set(ctx, storage.KeyToken, f.pendingToken); err != nil {
		f.log.Error(ctx, "failed to persist session token", "err", err)
	}
	f.pendingToken = ""
	f.apply(LoginEventOTPConfirmed)
	f.notes.Notify("Logged In Successfully", notify.SeveritySuccess)
}

// Retry returns a terminal flow to Idle so the user can resubmit. Any
// response still in flight is dropped.
func (f *LoginFlow) Retry() {
	f.gen++
	f.pendingToken = ""
	f.challenge = nil
	f.credentialNotice = ""
	f.apply(LoginEventRetry)
}

func (f *LoginFlow) apply(e LoginEvent) {
	f.state = NextLoginState(f.state, e)
}
