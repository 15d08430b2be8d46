// internal/service/catalog.go
package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
)

// CatalogService serves the approved AI tool catalog.
type CatalogService struct {
	tools repository.ToolRepositoryIface
}

func NewCatalogService(tools repository.ToolRepositoryIface) *CatalogService {
	return &CatalogService{tools: tools}
}

func (s *CatalogService) Catalog(ctx context.Context) ([]*model.AITool, error) {
	return s.tools.FindActive(ctx)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.tools.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// LogAccess records that employeeID launched toolID.
func (s *CatalogService) LogAccess(ctx context.Context, employeeID, toolID int64, now time.Time) error {
	if _, err := s.tools.FindByID(ctx, toolID); err != nil {
		return err
	}
	return s.tools.LogAccess(ctx, &model.ToolAccessLog{
		EmployeeID: employeeID,
		ToolID:     toolID,
		Action:     model.ToolActionAccess,
		Timestamp:  now.UTC(),
	})
}
