package flows

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/podstream/podstream-cli/internal/api"
	"github.com/podstream/podstream-cli/internal/logging"
	"github.com/podstream/podstream-cli/internal/notify"
	"github.com/podstream/podstream-cli/internal/storage"
)

// AccountStatus mirrors the backend's account standing.
type AccountStatus string

const (
	StatusVerified AccountStatus = "verified"
	StatusBlocked  AccountStatus = "blocked"
)

// ProfileRecord is the cached profile as displayed to the user. The cache
// is best-effort; the server remains the source of truth.
type ProfileRecord struct {
	Name     string
	Email    string
	Status   AccountStatus
	JoinDate string
}

// ProfileFlow shows the cached profile fields and runs the name-edit
// sub-flow: local validation, the update request, and re-persisting the
// cache on success.
type ProfileFlow struct {
	api   api.Client
	store storage.Store
	notes notify.Notifier
	log   logging.Logger

	record  ProfileRecord
	editing bool
	draft   string
	saving  bool
}

func NewProfileFlow(client api.Client, store storage.Store, notes notify.Notifier, log logging.Logger) *ProfileFlow {
	return &ProfileFlow{api: client, store: store, notes: notes, log: log}
}

// Load reads the cached profile fields from the local store. The returned
// error reports storage I/O problems only.
func (f *ProfileFlow) Load(ctx context.Context) error {
	name, err := f.store.Get(ctx, storage.KeyUserName)
	if err != nil {
		return err
	}
	email, err := f.store.Get(ctx, storage.KeyUserEmail)
	if err != nil {
		return err
	}
	joined, err := f.store.Get(ctx, storage.KeyUserJoinDate)
	if err != nil {
		return err
	}

	f.record = ProfileRecord{Name: name, Email: email, Status: StatusVerified, JoinDate: joined}
	return nil
}

// Record returns the profile currently on display.
func (f *ProfileFlow) Record() ProfileRecord { return f.record }

func (f *ProfileFlow) Editing() bool { return f.editing }
func (f *ProfileFlow) Draft() string { return f.draft }

// Edit enters edit mode with the current name as the draft.
func (f *ProfileFlow) Edit() {
	f.editing = true
	f.draft = f.record.Name
}

// SetName records the pending display-name edit.
func (f *ProfileFlow) SetName(name string) {
	if f.editing {
		f.draft = name
	}
}

// Cancel discards the pending edit without a request.
func (f *ProfileFlow) Cancel() {
	f.editing = false
	f.draft = ""
}

type editNameRequest struct {
	Name string `json:"name"`
}

// Save validates the draft locally, then issues the update. Success
// re-persists the cached name and leaves edit mode; any rejection or
// failure surfaces a notice and stays in edit mode for another attempt.
func (f *ProfileFlow) Save(ctx context.Context) {
	if !f.editing || f.saving {
		return
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.draft)) < 2 {
		f.notes.Notify("Username must be at least 2 characters long.", notify.SeverityError)
		return
	}

	f.saving = true
	defer func() { f.saving = false }()

	tok, err := f.store.Get(ctx, storage.KeyToken)
	if err != nil {
		f.log.Error(ctx, "failed to read session token", "err", err)
		f.notes.Notify("An error occurred. Please try again later.", notify.SeverityError)
		return
	}

	res, err := f.api.Put(ctx, "/user/edit-name", editNameRequest{Name: f.draft},
		map[string]string{"Authorization": tok})
	if err != nil {
		f.log.Warn(ctx, "edit-name request failed", "err", err)
		f.notes.Notify("An error occurred. Please try again later.", notify.SeverityError)
		return
	}

	switch res.Status {
	case api.StatusSuccess:
		if err := f.store.Set(ctx, storage.KeyUserName, f.draft); err != nil {
			f.log.Error(ctx, "failed to persist user name", "err", err)
		}
		f.record.Name = f.draft
		f.editing = false
		f.notes.Notify("Username updated successfully!", notify.SeveritySuccess)

	case api.StatusInvalidCredentials:
		f.notes.Notify("Invalid input. Please try again.", notify.SeverityError)

	default:
		f.notes.Notify("An error occurred. Please try again later.", notify.SeverityError)
	}
}
