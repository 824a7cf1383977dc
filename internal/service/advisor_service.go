package service

import (
	"context"
	"time"
	"unicode/utf8"

	"canvas-server/internal/models"
	"canvas-server/internal/repository"

	"go.uber.org/zap"
)

const (
	// Inputs longer than this many characters get the shortened suggestion list.
	suggestionInputThreshold = 10
	// Number of suggestions kept once the input passes the threshold.
	shortSuggestionCount = 3
)

// Delays emulate the latency of an upstream model call.
type Delays struct {
	Questions   time.Duration
	Suggestions time.Duration
}

// AdvisorService serves canned questions and suggestions for canvas sections.
type AdvisorService interface {
	GetQuestions(ctx context.Context, sectionID string) (*models.QuestionsResponse, error)
	GetSuggestions(ctx context.Context, sectionID, input string) (*models.SuggestionsResponse, error)
	ListSections(ctx context.Context) (*models.SectionsResponse, error)
}

type advisorServiceImpl struct {
	repo   repository.SectionRepository
	delays Delays
	logger *zap.Logger
}

// NewAdvisorService creates the advisor service on top of the section repository.
func NewAdvisorService(repo repository.SectionRepository, delays Delays, logger *zap.Logger) AdvisorService {
	return &advisorServiceImpl{
		repo:   repo,
		delays: delays,
		logger: logger,
	}
}

// GetQuestions waits for the questions delay, then returns the section's questions and context.
func (s *advisorServiceImpl) GetQuestions(ctx context.Context, sectionID string) (*models.QuestionsResponse, error) {
	if err := sleepContext(ctx, s.delays.Questions); err != nil {
		return nil, err
	}

	section, err := s.repo.GetByID(ctx, sectionID)
	if err != nil {
		s.logger.Debug("Questions lookup failed", zap.String("section", sectionID), zap.Error(err))
		return nil, err
	}

	return &models.QuestionsResponse{
		Questions: section.Questions,
		Context:   section.Context,
	}, nil
}

// GetSuggestions waits for the suggestions delay, then returns the section's
// suggestions, shortened when the input is longer than the threshold.
// The input text itself is not matched against anything.
func (s *advisorServiceImpl) GetSuggestions(ctx context.Context, sectionID, input string) (*models.SuggestionsResponse, error) {
	if err := sleepContext(ctx, s.delays.Suggestions); err != nil {
		return nil, err
	}

	section, err := s.repo.GetByID(ctx, sectionID)
	if err != nil {
		s.logger.Debug("Suggestions lookup failed", zap.String("section", sectionID), zap.Error(err))
		return nil, err
	}

	return &models.SuggestionsResponse{
		Suggestions: filterSuggestions(section.Suggestions, input),
	}, nil
}

// ListSections returns the section catalog in display order.
func (s *advisorServiceImpl) ListSections(ctx context.Context) (*models.SectionsResponse, error) {
	sections, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.SectionSummary, 0, len(sections))
	for _, section := range sections {
		summaries = append(summaries, section.Summary())
	}
	return &models.SectionsResponse{Sections: summaries}, nil
}

func filterSuggestions(suggestions []string, input string) []string {
	if utf8.RuneCountInString(input) > suggestionInputThreshold && len(suggestions) > shortSuggestionCount {
		return suggestions[:shortSuggestionCount]
	}
	return suggestions
}

// sleepContext blocks the calling request only; it returns early with the
// context error when the client goes away.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
