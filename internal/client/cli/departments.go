package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alumnihub/portal-cli/internal/client/api"
)

// Departments lists all departments with their reference ids.
func (a *App) Departments(ctx context.Context) error {
	items, err := a.departments.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err.Error())
		return err
	}

	for _, dep := range items {
		fmt.Fprintf(a.out, "[%s] %s (%s)\n", dep.ID, dep.Name, dep.Code)
	}
	return nil
}

// ShowDepartment prompts for an id and prints a single department.
func (a *App) ShowDepartment(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Department id", a.out)
	if err != nil {
		return err
	}

	dep, err := a.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Department not found.")
			return nil
		}
		fmt.Fprintf(a.out, "error: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "%s (%s)\n", dep.Name, dep.Code)
	return nil
}
