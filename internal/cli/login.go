package cli

import (
	"context"
	"os"

	"github.com/podstream/podstream-cli/internal/flows"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the sign-in flow. When the account
// still needs verification, the OTP challenge is completed inline.
//
// Outcome notifications come from the flow itself; this handler only deals
// with prompting and input validation feedback.
func (a *App) Login(ctx context.Context) error {
	flow := flows.NewLoginFlow(a.api, a.store, a.notes, flows.NewAPIVerifier(a.api), a.log)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	flow.SetEmail(email)
	if notice := flow.EmailNotice(); notice != "" {
		printlnFn(notice)
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	flow.SetPassword(password)

	if !flow.CanSubmit() {
		printlnFn("Password must be longer than 5 characters.")
		return nil
	}

	flow.Submit(ctx)

	if ch := flow.Challenge(); ch != nil {
		a.promptCode(ctx, ch.Submit)
	}

	if notice := flow.CredentialNotice(); notice != "" && flow.State() != flows.LoginLoggedIn {
		printlnFn(notice)
	}
	return nil
}

// promptCode asks for OTP codes until one is accepted or the user enters an
// empty line. A submit error means the code could not be checked at all, so
// the user may simply try again.
func (a *App) promptCode(ctx context.Context, submit func(context.Context, string) (bool, error)) bool {
	for {
		code, err := getSimpleText(a.reader, "Enter the OTP code (empty line to cancel)", os.Stdout)
		if err != nil || code == "" {
			return false
		}

		ok, err := submit(ctx, code)
		if err != nil {
			printlnFn("Could not verify the code:", err.Error())
			continue
		}
		if ok {
			return true
		}
		printlnFn("Incorrect code, try again.")
	}
}
