package repository

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"canvas-server/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var defaultSections []byte

// SectionRepository gives read-only access to the canvas content table.
//go:generate mockery --name SectionRepository --output ./mocks --outpkg mocks --case=underscore
type SectionRepository interface {
	// GetByID returns a copy of the section or models.ErrSectionNotFound.
	GetByID(ctx context.Context, id string) (*models.Section, error)
	// List returns copies of all sections ordered by their display order.
	List(ctx context.Context) ([]models.Section, error)
}

type sectionDocument struct {
	Sections []models.Section `yaml:"sections"`
}

// staticSectionRepository is built once and never written to afterwards,
// so concurrent reads need no locking.
type staticSectionRepository struct {
	byID    map[string]models.Section
	ordered []models.Section
}

// NewStaticSectionRepository loads the content table embedded in the binary.
func NewStaticSectionRepository() (SectionRepository, error) {
	return NewSectionRepositoryFromYAML(defaultSections)
}

// NewSectionRepositoryFromYAML parses a content document and checks the table invariants.
func NewSectionRepositoryFromYAML(data []byte) (SectionRepository, error) {
	var doc sectionDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse section content: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%w: no sections defined", models.ErrInvalidContent)
	}

	repo := &staticSectionRepository{
		byID:    make(map[string]models.Section, len(doc.Sections)),
		ordered: make([]models.Section, 0, len(doc.Sections)),
	}
	for i, s := range doc.Sections {
		if err := validateSection(s); err != nil {
			return nil, fmt.Errorf("section #%d: %w", i+1, err)
		}
		if _, dup := repo.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate section id %q", models.ErrInvalidContent, s.ID)
		}
		repo.byID[s.ID] = s
		repo.ordered = append(repo.ordered, s)
	}
	sort.SliceStable(repo.ordered, func(i, j int) bool {
		return repo.ordered[i].Order < repo.ordered[j].Order
	})

	return repo, nil
}

func validateSection(s models.Section) error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: empty id", models.ErrInvalidContent)
	case len(s.Questions) == 0:
		return fmt.Errorf("%w: section %q has no questions", models.ErrInvalidContent, s.ID)
	case len(s.Suggestions) == 0:
		return fmt.Errorf("%w: section %q has no suggestions", models.ErrInvalidContent, s.ID)
	case s.Context == "":
		return fmt.Errorf("%w: section %q has no context", models.ErrInvalidContent, s.ID)
	}
	return nil
}

func (r *staticSectionRepository) GetByID(_ context.Context, id string) (*models.Section, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, models.ErrSectionNotFound
	}
	clone := s.Clone()
	return &clone, nil
}

func (r *staticSectionRepository) List(_ context.Context) ([]models.Section, error) {
	out := make([]models.Section, len(r.ordered))
	for i, s := range r.ordered {
		out[i] = s.Clone()
	}
	return out, nil
}
