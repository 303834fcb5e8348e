package model

// ContactSubmission is a contact-form payload. It lives for one relay call
// and is never stored.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}
