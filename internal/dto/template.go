package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateTemplateRequest defines the data needed to create a letter template.
type CreateTemplateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required,max=30,lettercode"`
	HTMLContent string  `json:"htmlContent" binding:"required"`
	CategoryID  *string `json:"categoryID"`
	IsActive    *bool   `json:"isActive"` // Defaults to true when omitted
}

// UpdateTemplateRequest defines the data allowed for updating a template.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTemplateRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code" binding:"omitempty,max=30,lettercode"`
	HTMLContent *string `json:"htmlContent"`
	CategoryID  *string `json:"categoryID"`
	IsActive    *bool   `json:"isActive"`
}

// ListTemplatesRequest defines query parameters for listing templates.
type ListTemplatesRequest struct {
	CategoryID string `form:"categoryID"`
	IsActive   *bool  `form:"isActive"`
}

// RenderTemplateRequest carries the placeholder values for a template render.
type RenderTemplateRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// RenderTemplateResponse carries the rendered HTML.
type RenderTemplateResponse struct {
	HTML string `json:"html"`
}

// TemplateResponse defines the data returned for a letter template.
type TemplateResponse struct {
	TemplateID    string    `json:"templateID"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	HTMLContent   string    `json:"htmlContent"`
	CategoryID    *string   `json:"categoryID,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToTemplateResponse converts a domain.LetterTemplate to TemplateResponse DTO
func ToTemplateResponse(template *domain.LetterTemplate) TemplateResponse {
	return TemplateResponse{
		TemplateID:    template.TemplateID,
		Name:          template.Name,
		Code:          template.Code,
		HTMLContent:   template.HTMLContent,
		CategoryID:    template.CategoryID,
		IsActive:      template.IsActive,
		CreatedAt:     template.CreatedAt,
		CreatedBy:     template.CreatedBy,
		LastUpdatedAt: template.LastUpdatedAt,
		LastUpdatedBy: template.LastUpdatedBy,
	}
}

// ListTemplatesResponse wraps the list of templates.
type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ToListTemplatesResponse converts a slice of domain.LetterTemplate to ListTemplatesResponse DTO
func ToListTemplatesResponse(templates []domain.LetterTemplate) ListTemplatesResponse {
	res := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		res[i] = ToTemplateResponse(&template)
	}
	return ListTemplatesResponse{Templates: res}
}
