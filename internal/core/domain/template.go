package domain

// LetterTemplate is a reusable HTML body for drafting outgoing letters.
// Standalone; no cascading effects on other entities.
type LetterTemplate struct {
	TemplateID  string  `json:"templateID"` // Primary Key (UUID)
	Name        string  `json:"name"`
	Code        string  `json:"code"` // Unique short code
	HTMLContent string  `json:"htmlContent"`
	CategoryID  *string `json:"categoryID,omitempty"`
	IsActive    bool    `json:"isActive"`
	AuditFields
}
