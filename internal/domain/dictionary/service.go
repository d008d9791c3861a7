package dictionary

import (
	"context"
	"strings"
)

// Service resolves plan categories and payment types by exact name match.
// Absence is a valid business outcome during import validation, so misses are
// surfaced as ErrCategoryNotFound rather than faults.
type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) IDByName(ctx context.Context, name string) (uint, error) {
	return s.Repository.IDByName(ctx, strings.TrimSpace(name))
}

func (s *Service) NameByID(ctx context.Context, id uint) (string, error) {
	return s.Repository.NameByID(ctx, id)
}
