package models

// ErrorResponse is the JSON body of every error returned by the API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// QuestionsResponse is returned by GET /api/questions.
type QuestionsResponse struct {
	Questions []string `json:"questions"`
	Context   string   `json:"context"`
}

// SuggestionsResponse is returned by GET /api/suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SectionsResponse is returned by GET /api/sections.
type SectionsResponse struct {
	Sections []SectionSummary `json:"sections"`
}
