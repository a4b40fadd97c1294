package cli

import (
	"context"
	"fmt"

	"github.com/alumnihub/portal-cli/internal/client/models"
	"github.com/alumnihub/portal-cli/internal/client/services"
)

// Profile prints the current user's profile. The department may arrive as
// a bare reference id, in which case it is resolved with a follow-up call.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Name:  %s\n", user.Name)
	fmt.Fprintf(a.out, "Email: %s\n", user.Email)
	if user.JobTitle != "" {
		fmt.Fprintf(a.out, "Job:   %s\n", user.JobTitle)
	}
	if user.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", user.Phone)
	}
	fmt.Fprintf(a.out, "Batch: %s\n", user.Batch)

	a.printDepartment(ctx, user.Department)
	return nil
}

func (a *App) printDepartment(ctx context.Context, dep models.DepartmentField) {
	switch {
	case dep.IsZero():
	case dep.Ref != nil:
		fmt.Fprintf(a.out, "Dept:  %s (%s)\n", dep.Ref.Name, dep.Ref.Code)
	default:
		ref, err := a.departments.GetByID(ctx, dep.ID)
		if err != nil || ref == nil {
			fmt.Fprintf(a.out, "Dept:  %s\n", dep.ID)
			return
		}
		fmt.Fprintf(a.out, "Dept:  %s (%s)\n", ref.Name, ref.Code)
	}
}

// UpdateProfile prompts for the editable fields; empty input leaves a
// field unchanged. The server returns the merged profile, which replaces
// the cached one.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (empty to keep)", a.out)
	if err != nil {
		return err
	}
	jobTitle, err := getSimpleText(a.reader, "Job title (empty to keep)", a.out)
	if err != nil {
		return err
	}

	update := services.ProfileUpdate{Name: name, Phone: phone, JobTitle: jobTitle}
	if update == (services.ProfileUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	user, err := a.auth.UpdateProfile(ctx, update)
	if err != nil {
		fmt.Fprintf(a.out, "Update unsuccessful: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Profile updated for %s.\n", user.Name)
	return nil
}
