// Package api contains the client-side contract for talking to the
// Podstream backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): JSON
//     Post/Put exchanges whose responses carry a StatusClass instead of raw
//     HTTP codes, so flow logic never branches on transport details.
//  2. A concrete HTTP implementation (see HTTPClient) that manages a base
//     URL, tags every request with an X-Request-Id, applies a configured
//     timeout, and classifies response codes via Classify.
//
// # Error Handling
//
// A transport-level failure (no response received) is returned as an error
// wrapping ErrUnavailable, which callers match with errors.Is. Responses
// that did arrive are never errors; their StatusClass says what happened.
package api
