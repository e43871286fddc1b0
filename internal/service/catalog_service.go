package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/internal/repository"
)

// CatalogService reads the semester subject catalog.
type CatalogService interface {
	// SubjectCodes returns every subject code across all semesters, in
	// catalog order.
	SubjectCodes(ctx context.Context) ([]int, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService creates the CatalogService.
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) SubjectCodes(ctx context.Context) ([]int, error) {
	subjects, err := s.repo.Catalog.ListAll(ctx)
	if err != nil {
		s.logger.Error("reading subject catalog failed", zap.Error(err))
		return nil, err
	}

	codes := make([]int, 0, len(subjects))
	for _, sub := range subjects {
		codes = append(codes, sub.Code)
	}
	return codes, nil
}
