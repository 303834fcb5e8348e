package dto

// MissingFieldsDTO is the details payload of a 400 from POST /api/contact.
type MissingFieldsDTO struct {
	Missing []string `json:"missing"`
}
