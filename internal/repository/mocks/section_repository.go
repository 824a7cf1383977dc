package mocks

import (
	"context"

	"canvas-server/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock SectionRepository
type SectionRepository struct {
	mock.Mock
}

func (m *SectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Section)
	return s, args.Error(1)
}

func (m *SectionRepository) List(ctx context.Context) ([]models.Section, error) {
	args := m.Called(ctx)
	sections, _ := args.Get(0).([]models.Section)
	return sections, args.Error(1)
}
