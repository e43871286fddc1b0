package service

import (
	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/config"
	"github.com/onmedicines/asaserver/internal/repository"
	"github.com/onmedicines/asaserver/pkg/credentials"
	"github.com/onmedicines/asaserver/pkg/jwt"
	"github.com/onmedicines/asaserver/pkg/redis"
)

// Service aggregates the business services.
type Service struct {
	Auth       AuthService
	Submission SubmissionService
	Retrieval  RetrievalService
	Student    StudentService
	Roster     RosterService
	Catalog    CatalogService
	Export     ExportService
}

// NewService wires services to their dependencies. rdb may be nil; token
// revocation then degrades to a no-op.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	verifier := credentials.ForScheme(cfg.Auth.PasswordScheme)

	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, verifier, rdb, logger),
		Submission: NewSubmissionService(repo, logger),
		Retrieval:  NewRetrievalService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Roster:     NewRosterService(repo, logger),
		Catalog:    NewCatalogService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
