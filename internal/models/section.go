package models

import "slices"

// Section is one lean-canvas section together with its canned advisor content.
type Section struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Order       int      `yaml:"order" json:"order"`
	Questions   []string `yaml:"questions" json:"questions"`
	Suggestions []string `yaml:"suggestions" json:"suggestions"`
	Context     string   `yaml:"context" json:"context"`
}

// Clone returns a deep copy so callers can never mutate the shared table.
func (s Section) Clone() Section {
	s.Questions = slices.Clone(s.Questions)
	s.Suggestions = slices.Clone(s.Suggestions)
	return s
}

// SectionSummary is the catalog view of a section, without advisor content.
type SectionSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Summary strips the advisor content from the section.
func (s Section) Summary() SectionSummary {
	return SectionSummary{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Order:       s.Order,
	}
}
