package dto

// LoginRequest carries the credential pair supplied at login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"teacher"`
	Password string `json:"password" binding:"required" example:"1234"`
}

// LoginResponse is the payload returned on a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	TeacherID int64  `json:"teacher_id" example:"1"`
}
