package dto

// NoteRequest is the full field set for creating or replacing a class note.
type NoteRequest struct {
	Title   string `json:"title" example:"Photosynthesis summary"`
	Content string `json:"content" example:"Key points from today's lesson"`
	ClassID int64  `json:"class_id" example:"1"`
}
