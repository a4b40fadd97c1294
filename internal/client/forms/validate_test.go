package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alumnihub/portal-cli/internal/client/models"
	"github.com/alumnihub/portal-cli/internal/client/services"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		creds      services.Credentials
		wantFields []string
	}{
		{name: "valid", creds: services.Credentials{Email: "a@b.com", Password: "x"}},
		{name: "empty", creds: services.Credentials{}, wantFields: []string{"email", "password"}},
		{name: "bad email shape", creds: services.Credentials{Email: "not-an-email", Password: "x"},
			wantFields: []string{"email"}},
		{name: "missing password", creds: services.Credentials{Email: "a@b.com"},
			wantFields: []string{"password"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateLogin(tc.creds)
			assert.Equal(t, len(tc.wantFields) == 0, errs.Valid())
			for _, field := range tc.wantFields {
				assert.Contains(t, errs, field)
			}
			assert.Len(t, errs, len(tc.wantFields))
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := services.Registration{
		Name: "Alice", Email: "alice@example.org", Password: "secret1",
		Batch: "2015", Department: "d1",
	}

	t.Run("valid", func(t *testing.T) {
		assert.True(t, ValidateRegistration(valid, "secret1").Valid())
	})

	t.Run("whitespace name rejected", func(t *testing.T) {
		reg := valid
		reg.Name = "   "
		errs := ValidateRegistration(reg, "secret1")
		assert.Contains(t, errs, "name")
	})

	t.Run("short password", func(t *testing.T) {
		reg := valid
		reg.Password = "abc"
		errs := ValidateRegistration(reg, "abc")
		assert.Equal(t, "Password must be at least 6 characters", errs["password"])
	})

	t.Run("password mismatch", func(t *testing.T) {
		errs := ValidateRegistration(valid, "different")
		assert.Contains(t, errs, "confirmPassword")
	})

	t.Run("missing batch and department", func(t *testing.T) {
		reg := valid
		reg.Batch = ""
		reg.Department = ""
		errs := ValidateRegistration(reg, "secret1")
		assert.Contains(t, errs, "batch")
		assert.Contains(t, errs, "department")
	})
}

func TestValidateAnnouncement(t *testing.T) {
	assert.True(t, ValidateAnnouncement(models.NewAnnouncement{Title: "T", Description: "D"}).Valid())

	errs := ValidateAnnouncement(models.NewAnnouncement{Title: " ", Description: ""})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
}
