package repository

import (
	"context"
	"testing"

	"canvas-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownSectionIDs = []string{
	"problem",
	"solution",
	"uniqueValueProposition",
	"unfairAdvantage",
	"keyMetrics",
	"channels",
	"customerSegments",
	"costStructure",
	"revenueStreams",
}

func TestStaticSectionRepository_AllKnownSections(t *testing.T) {
	repo, err := NewStaticSectionRepository()
	require.NoError(t, err)

	ctx := context.Background()
	for _, id := range knownSectionIDs {
		s, err := repo.GetByID(ctx, id)
		require.NoError(t, err, "section %s should exist", id)
		assert.Equal(t, id, s.ID)
		assert.Len(t, s.Questions, 3, "section %s", id)
		assert.Len(t, s.Suggestions, 5, "section %s", id)
		assert.NotEmpty(t, s.Context, "section %s", id)
		assert.NotEmpty(t, s.Title, "section %s", id)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(knownSectionIDs))
}

func TestStaticSectionRepository_UnknownSection(t *testing.T) {
	repo, err := NewStaticSectionRepository()
	require.NoError(t, err)

	s, err := repo.GetByID(context.Background(), "bogus")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, models.ErrSectionNotFound)
}

func TestStaticSectionRepository_ListIsOrdered(t *testing.T) {
	repo, err := NewStaticSectionRepository()
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	for i := range all {
		assert.Equal(t, i+1, all[i].Order)
	}
	assert.Equal(t, "customerSegments", all[0].ID)
	assert.Equal(t, "revenueStreams", all[len(all)-1].ID)
}

func TestStaticSectionRepository_ReturnsCopies(t *testing.T) {
	repo, err := NewStaticSectionRepository()
	require.NoError(t, err)
	ctx := context.Background()

	first, err := repo.GetByID(ctx, "problem")
	require.NoError(t, err)
	first.Questions[0] = "mutated"
	first.Suggestions = first.Suggestions[:1]

	second, err := repo.GetByID(ctx, "problem")
	require.NoError(t, err)
	assert.Equal(t, "What are the top 3 problems your target customers face that your solution addresses?", second.Questions[0])
	assert.Len(t, second.Suggestions, 5)
}

func TestNewSectionRepositoryFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "no sections",
			doc:  "sections: []\n",
		},
		{
			name: "empty id",
			doc: `sections:
  - id: ""
    questions: [q]
    suggestions: [s]
    context: c
`,
		},
		{
			name: "missing questions",
			doc: `sections:
  - id: a
    suggestions: [s]
    context: c
`,
		},
		{
			name: "missing suggestions",
			doc: `sections:
  - id: a
    questions: [q]
    context: c
`,
		},
		{
			name: "missing context",
			doc: `sections:
  - id: a
    questions: [q]
    suggestions: [s]
`,
		},
		{
			name: "duplicate id",
			doc: `sections:
  - id: a
    questions: [q]
    suggestions: [s]
    context: c
  - id: a
    questions: [q]
    suggestions: [s]
    context: c
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewSectionRepositoryFromYAML([]byte(tt.doc))
			assert.Nil(t, repo)
			assert.ErrorIs(t, err, models.ErrInvalidContent)
		})
	}
}

func TestNewSectionRepositoryFromYAML_Malformed(t *testing.T) {
	_, err := NewSectionRepositoryFromYAML([]byte("sections: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidContent)
}
