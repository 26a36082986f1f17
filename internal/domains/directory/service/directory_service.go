package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/directory"
)

// directoryService implements directory.Service
type directoryService struct {
	repo directory.Repository
}

func NewDirectoryService(repo directory.Repository) directory.Service {
	return &directoryService{repo: repo}
}

func (s *directoryService) List(ctx context.Context, query string) ([]directory.Listing, error) {
	listings, err := s.repo.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return listings, nil
	}

	filtered := make([]directory.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.CompanyName), query) {
			filtered = append(filtered, l)
			continue
		}
		if l.Description != nil && strings.Contains(strings.ToLower(*l.Description), query) {
			filtered = append(filtered, l)
		}
	}

	return filtered, nil
}

func (s *directoryService) Get(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	return s.repo.FindPublisher(ctx, id)
}
