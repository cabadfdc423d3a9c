package dto

// ClassRequest is the full field set for creating or replacing a class.
// Updates are full replacements; every field is resupplied.
type ClassRequest struct {
	Name        string `json:"name" example:"Grade 5"`
	Description string `json:"description" example:"Morning section"`
}
