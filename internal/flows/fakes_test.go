package flows

import (
	"context"

	"github.com/podstream/podstream-cli/internal/api"
	"github.com/podstream/podstream-cli/internal/logging"
	"github.com/podstream/podstream-cli/internal/notify"
)

// fakeClient is a scripted api.Client that records the last request.
type fakeClient struct {
	postRes *api.Response
	postErr error
	putRes  *api.Response
	putErr  error

	posts       int
	puts        int
	lastPath    string
	lastBody    any
	lastHeaders map[string]string

	// onPost runs before the scripted POST response is returned,
	// simulating things that happen while a request is in flight.
	onPost func()
}

func (c *fakeClient) Post(_ context.Context, path string, body any) (*api.Response, error) {
	c.posts++
	c.lastPath = path
	c.lastBody = body
	if c.onPost != nil {
		c.onPost()
	}
	return c.postRes, c.postErr
}

func (c *fakeClient) Put(_ context.Context, path string, body any, headers map[string]string) (*api.Response, error) {
	c.puts++
	c.lastPath = path
	c.lastBody = body
	c.lastHeaders = headers
	return c.putRes, c.putErr
}

// fakeStore is an in-memory storage.Store.
type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.data[key], nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *fakeStore) Clear(_ context.Context) error {
	s.data = map[string]string{}
	return nil
}

type note struct {
	message  string
	severity notify.Severity
}

// recorder collects every notification a flow emits.
type recorder struct {
	notes []note
}

func (r *recorder) Notify(message string, severity notify.Severity) {
	r.notes = append(r.notes, note{message: message, severity: severity})
}

// fakeVerifier is a scripted OTP verifier.
type fakeVerifier struct {
	ok  bool
	err error

	lastEmail string
	lastCode  string
}

func (v *fakeVerifier) Verify(_ context.Context, email, code string) (bool, error) {
	v.lastEmail = email
	v.lastCode = code
	return v.ok, v.err
}

func nopLogger() logging.Logger { return logging.NewNop() }
