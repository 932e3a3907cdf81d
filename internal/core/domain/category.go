package domain

// Category classifies letters and templates (e.g. undangan, edaran).
type Category struct {
	CategoryID  string `json:"categoryID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Code        string `json:"code"` // Unique short code
	Description string `json:"description"`
	AuditFields
}
