package api

import (
	"fmt"
	"net/url"
)

// REST paths exposed by the portal backend, relative to the configured
// base URL.
const (
	PathRegister      = "/api/auth/register"
	PathLogin         = "/api/auth/login"
	PathProfile       = "/api/auth/profile"
	PathDepartments   = "/api/departments"
	PathAnnouncements = "/api/announcements"
	PathHealth        = "/health"
)

func PathDepartmentByID(id string) string {
	return PathDepartments + "/" + url.PathEscape(id)
}

func PathAnnouncementByID(id string) string {
	return PathAnnouncements + "/" + url.PathEscape(id)
}

func PathAnnouncementsPage(page, limit int) string {
	return fmt.Sprintf("%s?page=%d&limit=%d", PathAnnouncements, page, limit)
}
