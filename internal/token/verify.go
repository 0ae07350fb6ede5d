// Package token derives the client's authorization state from the locally
// persisted session token.
//
// The validator checks structural well-formedness and expiry only. It
// performs NO signature verification: token integrity is delegated entirely
// to the issuing server. This is a deliberate trust boundary of the client,
// not an omission.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/podstream/podstream-cli/internal/storage"
)

// State is the authorization state derived from a session token.
type State struct {
	IsValid bool
	IsAdmin bool
	Email   string
	UserID  string
}

// now is a test seam for expiry checks.
var now = time.Now

// Verify decodes raw and derives the authorization state. It fails softly:
// any absent, undecodable, expired, or structurally incomplete token yields
// the zero State; no error ever propagates to the caller.
//
// A token is accepted iff its exp claim is in the future, an email claim is
// present, and at least one of admin_id/user_id is present. An admin_id
// claim wins over user_id when both appear.
func Verify(raw string) State {
	if raw == "" {
		return State{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return State{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(now()) {
		return State{}
	}

	email := claimString(claims["email"])
	adminID := claimString(claims["admin_id"])
	userID := claimString(claims["user_id"])

	if email == "" || (adminID == "" && userID == "") {
		return State{}
	}

	id := adminID
	if id == "" {
		id = userID
	}

	return State{
		IsValid: true,
		IsAdmin: adminID != "",
		Email:   email,
		UserID:  id,
	}
}

// FromStore reads the persisted session token and verifies it. The returned
// error reports storage I/O problems only; a missing or invalid token is not
// an error, it is the zero State.
func FromStore(ctx context.Context, store storage.Store) (State, error) {
	raw, err := store.Get(ctx, storage.KeyToken)
	if err != nil {
		return State{}, fmt.Errorf("read session token: %w", err)
	}
	return Verify(raw), nil
}

// claimString renders a claim value as a string. Numeric identifiers are
// formatted without an exponent so they stay usable as opaque IDs.
func claimString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return ""
	}
}
