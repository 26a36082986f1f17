package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/directory"
)

type mockDirectoryRepo struct {
	mock.Mock
}

func (m *mockDirectoryRepo) ListPublishers(ctx context.Context) ([]directory.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Listing), args.Error(1)
}

func (m *mockDirectoryRepo) FindPublisher(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Listing), args.Error(1)
}

func TestDirectoryList_FiltersByCompanyName(t *testing.T) {
	repo := new(mockDirectoryRepo)
	svc := NewDirectoryService(repo)

	repo.On("ListPublishers", mock.Anything).Return([]directory.Listing{
		{CompanyName: "Anchor Games"},
		{CompanyName: "Bright anchor Studio"},
		{CompanyName: "Cardboard Forge"},
	}, nil)

	got, err := svc.List(context.Background(), " ANCHOR ")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Anchor Games", got[0].CompanyName)
	assert.Equal(t, "Bright anchor Studio", got[1].CompanyName)
}

func TestDirectoryList_NoFilterReturnsAll(t *testing.T) {
	repo := new(mockDirectoryRepo)
	svc := NewDirectoryService(repo)

	repo.On("ListPublishers", mock.Anything).Return([]directory.Listing{
		{CompanyName: "Anchor Games"},
		{CompanyName: "Cardboard Forge"},
	}, nil)

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDirectoryGet_NotFound(t *testing.T) {
	repo := new(mockDirectoryRepo)
	svc := NewDirectoryService(repo)

	id := uuid.New()
	repo.On("FindPublisher", mock.Anything, id).Return(nil, directory.ErrPublisherNotFound)

	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, directory.ErrPublisherNotFound)
}
