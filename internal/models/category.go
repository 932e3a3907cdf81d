package models

// Category represents a letter category row.
type Category struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Code        string `db:"code"`
	Description string `db:"description"`
	AuditFields
}
