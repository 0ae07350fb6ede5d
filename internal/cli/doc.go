// Package cli provides the interactive Podstream account command-line
// client.
//
// It wires configuration, the local key-value store, the HTTP API client,
// and an interactive REPL. Typical flow: sign in (completing an OTP
// challenge when the account still needs verification), then inspect or
// edit the profile.
//
// Key features:
//   - Login with OTP verification hand-off
//   - Password reset (code request, code entry, new password)
//   - Profile display and display-name editing
//   - whoami / logout against the locally stored session token
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
