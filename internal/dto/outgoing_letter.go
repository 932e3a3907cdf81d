package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateOutgoingLetterRequest defines the data needed to create an outgoing letter.
// An empty letter number asks the service to allocate the next one for the month.
type CreateOutgoingLetterRequest struct {
	LetterNumber   *string                      `json:"letterNumber"`
	LetterDate     time.Time                    `json:"letterDate" binding:"required"`
	Destination    string                       `json:"destination" binding:"required"`
	Subject        string                       `json:"subject" binding:"required"`
	BodyHTML       *string                      `json:"bodyHTML"`
	AttachmentNote *string                      `json:"attachmentNote"`
	Sensitivity    domain.Sensitivity           `json:"sensitivity" binding:"omitempty,oneof=NORMAL URGENT VERY_URGENT CONFIDENTIAL"`
	Status         *domain.OutgoingLetterStatus `json:"status" binding:"omitempty,oneof=DRAFT SENT"` // Defaults to DRAFT
	Note           *string                      `json:"note"`
	FileRef        *string                      `json:"fileRef"`
	CategoryID     *string                      `json:"categoryID"`
}

// UpdateOutgoingLetterRequest defines the data allowed for updating an outgoing letter.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateOutgoingLetterRequest struct {
	LetterNumber   *string                      `json:"letterNumber"`
	LetterDate     *time.Time                   `json:"letterDate"`
	Destination    *string                      `json:"destination"`
	Subject        *string                      `json:"subject"`
	BodyHTML       *string                      `json:"bodyHTML"`
	AttachmentNote *string                      `json:"attachmentNote"`
	Sensitivity    *domain.Sensitivity          `json:"sensitivity" binding:"omitempty,oneof=NORMAL URGENT VERY_URGENT CONFIDENTIAL"`
	Status         *domain.OutgoingLetterStatus `json:"status" binding:"omitempty,oneof=DRAFT SENT ARCHIVED"`
	Note           *string                      `json:"note"`
	FileRef        *string                      `json:"fileRef"`
	CategoryID     *string                      `json:"categoryID"`
}

// ListOutgoingLettersRequest defines query parameters for listing outgoing letters.
// Date bounds are parsed by the handler; zero values mean unbounded.
type ListOutgoingLettersRequest struct {
	Status      string `form:"status" binding:"omitempty,oneof=DRAFT SENT ARCHIVED"`
	Sensitivity string `form:"sensitivity" binding:"omitempty,oneof=NORMAL URGENT VERY_URGENT CONFIDENTIAL"`
	CategoryID  string `form:"categoryID"`
	Search      string `form:"search"`
	From        time.Time
	To          time.Time
	Limit       int `form:"limit,default=20"`
	Offset      int `form:"offset,default=0"`
}

// NextLetterNumberResponse carries a previewed outgoing letter number.
type NextLetterNumberResponse struct {
	LetterNumber string `json:"letterNumber"`
}

// OutgoingLetterResponse defines the data returned for an outgoing letter.
type OutgoingLetterResponse struct {
	LetterID       string                      `json:"letterID"`
	LetterNumber   string                      `json:"letterNumber"`
	LetterDate     time.Time                   `json:"letterDate"`
	Destination    string                      `json:"destination"`
	Subject        string                      `json:"subject"`
	BodyHTML       *string                     `json:"bodyHTML,omitempty"`
	AttachmentNote *string                     `json:"attachmentNote,omitempty"`
	Sensitivity    domain.Sensitivity          `json:"sensitivity"`
	Status         domain.OutgoingLetterStatus `json:"status"`
	AuthorID       string                      `json:"authorID"`
	Note           *string                     `json:"note,omitempty"`
	FileRef        *string                     `json:"fileRef,omitempty"`
	CategoryID     *string                     `json:"categoryID,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
	CreatedBy      string                      `json:"createdBy"`
	LastUpdatedAt  time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy  string                      `json:"lastUpdatedBy"`
}

// ToOutgoingLetterResponse converts a domain.OutgoingLetter to OutgoingLetterResponse DTO
func ToOutgoingLetterResponse(letter *domain.OutgoingLetter) OutgoingLetterResponse {
	return OutgoingLetterResponse{
		LetterID:       letter.LetterID,
		LetterNumber:   letter.LetterNumber,
		LetterDate:     letter.LetterDate,
		Destination:    letter.Destination,
		Subject:        letter.Subject,
		BodyHTML:       letter.BodyHTML,
		AttachmentNote: letter.AttachmentNote,
		Sensitivity:    letter.Sensitivity,
		Status:         letter.Status,
		AuthorID:       letter.AuthorID,
		Note:           letter.Note,
		FileRef:        letter.FileRef,
		CategoryID:     letter.CategoryID,
		CreatedAt:      letter.CreatedAt,
		CreatedBy:      letter.CreatedBy,
		LastUpdatedAt:  letter.LastUpdatedAt,
		LastUpdatedBy:  letter.LastUpdatedBy,
	}
}

// ListOutgoingLettersResponse wraps the list of outgoing letters.
type ListOutgoingLettersResponse struct {
	Letters []OutgoingLetterResponse `json:"letters"`
}

// ToListOutgoingLettersResponse converts a slice of domain.OutgoingLetter to ListOutgoingLettersResponse DTO
func ToListOutgoingLettersResponse(letters []domain.OutgoingLetter) ListOutgoingLettersResponse {
	res := make([]OutgoingLetterResponse, len(letters))
	for i, letter := range letters {
		res[i] = ToOutgoingLetterResponse(&letter)
	}
	return ListOutgoingLettersResponse{Letters: res}
}
