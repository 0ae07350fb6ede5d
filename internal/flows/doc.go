// Package flows implements the client-side authentication flows: credential
// submission, OTP challenges, password reset, and profile editing.
//
// # State machines
//
// Every flow keeps exactly one discriminated state value, advanced by a pure
// transition function (NextLoginState, NextResetState). Events that are
// illegal in the current state leave it unchanged, so sibling-boolean
// combinations like "needs verification but no challenge shown" cannot be
// represented at all. Network responses arrive as api.StatusClass values;
// the flows never see raw HTTP codes.
//
// # Collaborators
//
// Flows talk to the outside world through four interfaces: api.Client
// (request/response exchanges), storage.Store (persisted token and cached
// profile fields), notify.Notifier (transient user messages), and Verifier
// (external OTP entry/verification). All of them are injected, which keeps
// the flows testable without a rendered UI or a live server.
//
// # Error handling
//
// No error escapes a flow: every failure resolves into a user-visible notice
// plus a state the user can retry from. In-flight requests are guarded by
// per-flow generation counters; a response that arrives after the flow was
// reset or resubmitted is dropped.
package flows
