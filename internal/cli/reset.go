package cli

import (
	"context"
	"os"

	"github.com/podstream/podstream-cli/internal/flows"
)

// Reset walks the user through the password reset flow: the code request,
// OTP entry, and the new password. Abandoning any step closes the flow
// without side effects.
func (a *App) Reset(ctx context.Context) error {
	flow := flows.NewResetFlow(a.api, a.notes, flows.NewAPIVerifier(a.api), a.log)
	defer flow.Close()

	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return err
	}
	flow.SetEmail(email)
	if !flow.CanRequestCode() {
		printlnFn("An email address is required.")
		return nil
	}

	flow.RequestCode(ctx)
	if flow.State() != flows.ResetOTPEntry {
		if notice := flow.EmailNotice(); notice != "" {
			printlnFn(notice)
		}
		return nil
	}

	if !a.promptCode(ctx, flow.VerifyCode) {
		return nil
	}

	for {
		password, err := getPassword("Enter new password (empty to cancel)", os.Stdout)
		if err != nil {
			return err
		}
		if password == "" {
			return nil
		}
		flow.SetNewPassword(password)

		confirmed, err := getPassword("Confirm new password", os.Stdout)
		if err != nil {
			return err
		}
		flow.SetConfirmedPassword(confirmed)

		if flow.CanSubmit() {
			break
		}
		if notice := flow.Notice(); notice != "" {
			printlnFn(notice)
		}
	}

	flow.Submit(ctx)
	return nil
}
