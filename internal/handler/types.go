package handler

// Section has no binding:"required" tag: validator rejects empty strings,
// while an empty section is a valid (unknown) identifier answered with 404.
// Presence is checked with requireSectionParam instead.
type questionsQuery struct {
	Section string `form:"section"`
}

type suggestionsQuery struct {
	Section string `form:"section"`
	Input   string `form:"input"`
}
