// Package forms implements client-side form validation. Validation never
// reaches the network; failed fields are reported as a field→message map
// the views render next to their inputs.
package forms

import (
	"regexp"
	"strings"

	"github.com/alumnihub/portal-cli/internal/client/models"
	"github.com/alumnihub/portal-cli/internal/client/services"
)

// emailRe mirrors the permissive shape check the portal has always used;
// real validation is the server's job.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// Errors maps a field name to its validation message. An empty map means
// the form is valid.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// ValidateLogin checks the login form.
func ValidateLogin(creds services.Credentials) Errors {
	errs := Errors{}
	if creds.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(creds.Email) {
		errs["email"] = "Email is invalid"
	}
	if creds.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidateRegistration checks the registration form. confirmPassword is
// compared but never sent to the server.
func ValidateRegistration(reg services.Registration, confirmPassword string) Errors {
	errs := Errors{}

	if strings.TrimSpace(reg.Name) == "" {
		errs["name"] = "Name is required"
	}

	if reg.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(reg.Email) {
		errs["email"] = "Email is invalid"
	}

	if reg.Password == "" {
		errs["password"] = "Password is required"
	} else if len(reg.Password) < MinPasswordLen {
		errs["password"] = "Password must be at least 6 characters"
	}

	if reg.Password != confirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if reg.Batch == "" {
		errs["batch"] = "Batch year is required"
	}

	if reg.Department == "" {
		errs["department"] = "Department is required"
	}

	return errs
}

// ValidateAnnouncement checks the create-announcement form.
func ValidateAnnouncement(data models.NewAnnouncement) Errors {
	errs := Errors{}
	if strings.TrimSpace(data.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(data.Description) == "" {
		errs["description"] = "Description is required"
	}
	return errs
}
