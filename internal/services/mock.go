package services

import (
	"context"

	"cattags/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTagService is a mock implementation of domain.TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTagService) ListAvailableTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTagService) GetPicture(ctx context.Context, tag string) (*domain.Picture, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(*domain.Picture), args.Error(1)
}

func (m *MockTagService) SaveTag(ctx context.Context, tag string) (*domain.Tag, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) UpdateTag(ctx context.Context, oldTag, newTag string) (*domain.Tag, error) {
	args := m.Called(ctx, oldTag, newTag)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) DeleteTag(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}
