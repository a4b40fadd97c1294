package cli

import (
	"context"
	"fmt"

	"github.com/alumnihub/portal-cli/internal/client/forms"
	"github.com/alumnihub/portal-cli/internal/client/services"
	"github.com/alumnihub/portal-cli/internal/common"
)

// Login prompts for credentials, validates them locally, and authenticates
// against the server. On success the session is persisted and the prompt
// switches to the logged-in command set.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	creds := services.Credentials{Email: email, Password: string(password)}
	if errs := forms.ValidateLogin(creds); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	user, err := a.auth.Login(ctx, creds)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	return nil
}

// Register walks through the registration form. The department is chosen
// by id from the fetched department list, matching the web form's dropdown.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	batch, err := getSimpleText(a.reader, "Batch (graduation year)", a.out)
	if err != nil {
		return err
	}

	if err := a.Departments(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not fetch departments; enter the id manually.")
	}
	department, err := getSimpleText(a.reader, "Department id", a.out)
	if err != nil {
		return err
	}

	jobTitle, err := getSimpleText(a.reader, "Job title (optional)", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}

	reg := services.Registration{
		Name:       name,
		Email:      email,
		Password:   string(password),
		Batch:      batch,
		Department: department,
		JobTitle:   jobTitle,
		Phone:      phone,
	}

	if errs := forms.ValidateRegistration(reg, string(confirm)); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	user, err := a.auth.Register(ctx, reg)
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are now logged in.\n", user.Name)
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) printFieldErrors(errs forms.Errors) {
	for field, msg := range errs {
		fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
	}
}
