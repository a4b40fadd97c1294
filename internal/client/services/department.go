package services

import (
	"context"
	"net/http"

	"github.com/alumnihub/portal-cli/internal/client/api"
	"github.com/alumnihub/portal-cli/internal/client/models"
)

// DepartmentService is the departments resource client. Departments are
// immutable reference data fetched on demand.
type DepartmentService interface {
	List(ctx context.Context) ([]models.DepartmentRef, error)
	GetByID(ctx context.Context, id string) (*models.DepartmentRef, error)
}

type departmentService struct {
	api Doer
}

func NewDepartmentService(apiClient Doer) DepartmentService {
	return &departmentService{api: apiClient}
}

func (s *departmentService) List(ctx context.Context) ([]models.DepartmentRef, error) {
	var env api.Envelope[[]models.DepartmentRef]
	if err := s.api.Do(ctx, http.MethodGet, api.PathDepartments, nil, &env); err != nil {
		return nil, api.Fallback(err, "failed to fetch departments")
	}
	if !env.Success {
		return nil, &api.Error{Message: orDefault(env.Message, "failed to fetch departments")}
	}
	return env.Data, nil
}

func (s *departmentService) GetByID(ctx context.Context, id string) (*models.DepartmentRef, error) {
	var env api.Envelope[*models.DepartmentRef]
	if err := s.api.Do(ctx, http.MethodGet, api.PathDepartmentByID(id), nil, &env); err != nil {
		return nil, api.Fallback(err, "failed to fetch department details")
	}
	if !env.Success || env.Data == nil {
		return nil, &api.Error{Message: orDefault(env.Message, "failed to fetch department details")}
	}
	return env.Data, nil
}
