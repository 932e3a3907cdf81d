package models

// LetterTemplate represents a reusable outgoing-letter body row.
type LetterTemplate struct {
	TemplateID  string  `db:"template_id"`
	Name        string  `db:"name"`
	Code        string  `db:"code"`
	HTMLContent string  `db:"html_content"`
	CategoryID  *string `db:"category_id"`
	IsActive    bool    `db:"is_active"`
	AuditFields
}
