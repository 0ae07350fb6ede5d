package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/podstream/podstream-cli/internal/flows"
	"github.com/podstream/podstream-cli/internal/storage"
)

// Profile shows the cached profile and offers the display-name edit.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	flow := flows.NewProfileFlow(a.api, a.store, a.notes, a.log)
	if err := flow.Load(ctx); err != nil {
		a.log.Error(ctx, "failed to load profile", "err", err)
		return err
	}

	rec := flow.Record()
	printlnFn("Name:   " + rec.Name)
	printlnFn("Email:  " + rec.Email)
	printlnFn("Status: " + string(rec.Status))
	printlnFn("Joined: " + rec.JoinDate)

	answer, err := getSimpleText(a.reader, "Edit display name? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}

	flow.Edit()
	name, err := getSimpleText(a.reader, "Enter new display name", os.Stdout)
	if err != nil {
		return err
	}
	flow.SetName(name)
	flow.Save(ctx)
	return nil
}

// WhoAmI prints the identity carried by the locally stored session token.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session(ctx)
	if !st.IsValid {
		printlnFn("Not logged in.")
		return nil
	}

	role := "user"
	if st.IsAdmin {
		role = "admin"
	}
	printlnFn(fmt.Sprintf("%s (%s, id %s)", st.Email, role, st.UserID))
	return nil
}

// Logout removes the session token and the cached profile fields. The
// server is not involved; the session simply stops existing locally.
func (a *App) Logout(ctx context.Context) error {
	keys := []string{
		storage.KeyToken,
		storage.KeyUserName,
		storage.KeyUserEmail,
		storage.KeyUserJoinDate,
	}
	for _, key := range keys {
		if err := a.store.Delete(ctx, key); err != nil {
			a.log.Error(ctx, "failed to clear session", "key", key, "err", err)
			return err
		}
	}
	printlnFn("Logged out.")
	return nil
}
