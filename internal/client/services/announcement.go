package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/alumnihub/portal-cli/internal/client/api"
	"github.com/alumnihub/portal-cli/internal/client/models"
)

// ErrInvalidPage is returned for page numbers below 1. Page-size bounds
// are a server concern.
var ErrInvalidPage = errors.New("page must be at least 1")

// AnnouncementService is the announcements resource client. All operations
// are pure request/response: no caching and no optimistic inserts, so a
// caller holding a list must re-fetch after Create.
type AnnouncementService interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Paginated(ctx context.Context, page, limit int) ([]models.Announcement, *api.Pagination, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	Create(ctx context.Context, data models.NewAnnouncement) (*models.Announcement, error)
}

type announcementService struct {
	api Doer
}

func NewAnnouncementService(apiClient Doer) AnnouncementService {
	return &announcementService{api: apiClient}
}

func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	var env api.Envelope[[]models.Announcement]
	if err := s.api.Do(ctx, http.MethodGet, api.PathAnnouncements, nil, &env); err != nil {
		return nil, api.Fallback(err, "failed to fetch announcements")
	}
	if !env.Success {
		return nil, &api.Error{Message: orDefault(env.Message, "failed to fetch announcements")}
	}
	return env.Data, nil
}

// Paginated requests one page. Out-of-range pages return whatever the
// server defines, typically an empty page with real pagination metadata;
// no clamping happens client-side.
func (s *announcementService) Paginated(ctx context.Context, page, limit int) ([]models.Announcement, *api.Pagination, error) {
	if page < 1 {
		return nil, nil, ErrInvalidPage
	}

	var env api.Envelope[[]models.Announcement]
	if err := s.api.Do(ctx, http.MethodGet, api.PathAnnouncementsPage(page, limit), nil, &env); err != nil {
		return nil, nil, api.Fallback(err, "failed to fetch announcements")
	}
	if !env.Success {
		return nil, nil, &api.Error{Message: orDefault(env.Message, "failed to fetch announcements")}
	}
	return env.Data, env.Pagination, nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	var env api.Envelope[*models.Announcement]
	if err := s.api.Do(ctx, http.MethodGet, api.PathAnnouncementByID(id), nil, &env); err != nil {
		return nil, api.Fallback(err, "failed to fetch announcement details")
	}
	if !env.Success || env.Data == nil {
		return nil, &api.Error{Message: orDefault(env.Message, "failed to fetch announcement details")}
	}
	return env.Data, nil
}

// Create posts a new announcement. Payload shape beyond what the form
// layer validated is a server concern; validation errors come back
// verbatim in the error envelope.
func (s *announcementService) Create(ctx context.Context, data models.NewAnnouncement) (*models.Announcement, error) {
	var env api.Envelope[*models.Announcement]
	if err := s.api.Do(ctx, http.MethodPost, api.PathAnnouncements, data, &env); err != nil {
		return nil, api.Fallback(err, "failed to create announcement")
	}
	if !env.Success || env.Data == nil {
		return nil, &api.Error{Message: orDefault(env.Message, "failed to create announcement")}
	}
	return env.Data, nil
}
