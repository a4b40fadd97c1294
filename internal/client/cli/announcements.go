package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alumnihub/portal-cli/internal/client/api"
	"github.com/alumnihub/portal-cli/internal/client/forms"
	"github.com/alumnihub/portal-cli/internal/client/models"
)

// announcementsPageSize matches the web portal's list page size.
const announcementsPageSize = 5

// Announcements shows one page of announcements. The user is prompted for
// a page number; empty input means page 1. Out-of-range pages come back as
// an empty page, not an error.
func (a *App) Announcements(ctx context.Context) error {
	input, err := getSimpleText(a.reader, "Page (empty for 1)", a.out)
	if err != nil {
		return err
	}

	page := 1
	if input != "" {
		page, err = strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(a.out, "Page must be a number.")
			return nil
		}
	}

	items, pagination, err := a.announcements.Paginated(ctx, page, announcementsPageSize)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err.Error())
		return nil
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No announcements on this page.")
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "[%s] %s — %s\n", item.ID, item.Title, item.CreatedAt)
		if item.Author != nil {
			fmt.Fprintf(a.out, "      by %s\n", item.Author.Name)
		}
	}

	if pagination != nil {
		fmt.Fprintf(a.out, "Page %d of %d (%d total)\n",
			pagination.CurrentPage, pagination.TotalPages, pagination.TotalCount)
	}
	return nil
}

// ShowAnnouncement prompts for an id and prints the full announcement.
// A missing id renders as a not-found line rather than an error dump.
func (a *App) ShowAnnouncement(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Announcement id", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(a.out, "Usage: show needs an announcement id.")
		return nil
	}

	item, err := a.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Announcement not found.")
			return nil
		}
		fmt.Fprintf(a.out, "error: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "%s\n%s\n", item.Title, item.Description)
	fmt.Fprintf(a.out, "Posted %s", item.CreatedAt)
	if item.Author != nil {
		fmt.Fprintf(a.out, " by %s", item.Author.Name)
		if item.Author.JobTitle != "" {
			fmt.Fprintf(a.out, " (%s)", item.Author.JobTitle)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// PostAnnouncement prompts for title and body and creates the
// announcement. The created item is not inserted into any cached list;
// browse again to see it.
func (a *App) PostAnnouncement(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	data := models.NewAnnouncement{Title: title, Description: description}
	if errs := forms.ValidateAnnouncement(data); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	created, err := a.announcements.Create(ctx, data)
	if err != nil {
		fmt.Fprintf(a.out, "Create unsuccessful: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Announcement %s created.\n", created.ID)
	return nil
}
