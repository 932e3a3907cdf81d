package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateIncomingLetterRequest defines the data needed to register a received letter.
type CreateIncomingLetterRequest struct {
	LetterNumber   string             `json:"letterNumber" binding:"required"`
	LetterDate     time.Time          `json:"letterDate" binding:"required"`
	ReceivedDate   *time.Time         `json:"receivedDate"` // Defaults to now when omitted
	Sender         string             `json:"sender" binding:"required"`
	Subject        string             `json:"subject" binding:"required"`
	AttachmentNote *string            `json:"attachmentNote"`
	Sensitivity    domain.Sensitivity `json:"sensitivity" binding:"omitempty,oneof=NORMAL URGENT VERY_URGENT CONFIDENTIAL"`
	Note           *string            `json:"note"`
	FileRef        *string            `json:"fileRef"`
	CategoryID     *string            `json:"categoryID"`
}

// UpdateIncomingLetterRequest defines the data allowed for updating an incoming letter.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateIncomingLetterRequest struct {
	LetterNumber   *string                      `json:"letterNumber"`
	LetterDate     *time.Time                   `json:"letterDate"`
	ReceivedDate   *time.Time                   `json:"receivedDate"`
	Sender         *string                      `json:"sender"`
	Subject        *string                      `json:"subject"`
	AttachmentNote *string                      `json:"attachmentNote"`
	Sensitivity    *domain.Sensitivity          `json:"sensitivity" binding:"omitempty,oneof=NORMAL URGENT VERY_URGENT CONFIDENTIAL"`
	Status         *domain.IncomingLetterStatus `json:"status" binding:"omitempty,oneof=NEW IN_PROGRESS DONE ARCHIVED"`
	Note           *string                      `json:"note"`
	FileRef        *string                      `json:"fileRef"`
	CategoryID     *string                      `json:"categoryID"`
}

// ListIncomingLettersRequest defines query parameters for listing incoming letters.
// Date bounds are parsed by the handler; zero values mean unbounded.
type ListIncomingLettersRequest struct {
	Status      string `form:"status" binding:"omitempty,oneof=NEW IN_PROGRESS DONE ARCHIVED"`
	Sensitivity string `form:"sensitivity" binding:"omitempty,oneof=NORMAL URGENT VERY_URGENT CONFIDENTIAL"`
	CategoryID  string `form:"categoryID"`
	Search      string `form:"search"`
	From        time.Time
	To          time.Time
	Limit       int `form:"limit,default=20"`
	Offset      int `form:"offset,default=0"`
}

// IncomingLetterResponse defines the data returned for an incoming letter.
type IncomingLetterResponse struct {
	LetterID       string                      `json:"letterID"`
	LetterNumber   string                      `json:"letterNumber"`
	LetterDate     time.Time                   `json:"letterDate"`
	ReceivedDate   time.Time                   `json:"receivedDate"`
	Sender         string                      `json:"sender"`
	Subject        string                      `json:"subject"`
	AttachmentNote *string                     `json:"attachmentNote,omitempty"`
	Sensitivity    domain.Sensitivity          `json:"sensitivity"`
	Status         domain.IncomingLetterStatus `json:"status"`
	Note           *string                     `json:"note,omitempty"`
	FileRef        *string                     `json:"fileRef,omitempty"`
	CategoryID     *string                     `json:"categoryID,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
	CreatedBy      string                      `json:"createdBy"`
	LastUpdatedAt  time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy  string                      `json:"lastUpdatedBy"`
}

// ToIncomingLetterResponse converts a domain.IncomingLetter to IncomingLetterResponse DTO
func ToIncomingLetterResponse(letter *domain.IncomingLetter) IncomingLetterResponse {
	return IncomingLetterResponse{
		LetterID:       letter.LetterID,
		LetterNumber:   letter.LetterNumber,
		LetterDate:     letter.LetterDate,
		ReceivedDate:   letter.ReceivedDate,
		Sender:         letter.Sender,
		Subject:        letter.Subject,
		AttachmentNote: letter.AttachmentNote,
		Sensitivity:    letter.Sensitivity,
		Status:         letter.Status,
		Note:           letter.Note,
		FileRef:        letter.FileRef,
		CategoryID:     letter.CategoryID,
		CreatedAt:      letter.CreatedAt,
		CreatedBy:      letter.CreatedBy,
		LastUpdatedAt:  letter.LastUpdatedAt,
		LastUpdatedBy:  letter.LastUpdatedBy,
	}
}

// ListIncomingLettersResponse wraps the list of incoming letters.
type ListIncomingLettersResponse struct {
	Letters []IncomingLetterResponse `json:"letters"`
}

// ToListIncomingLettersResponse converts a slice of domain.IncomingLetter to ListIncomingLettersResponse DTO
func ToListIncomingLettersResponse(letters []domain.IncomingLetter) ListIncomingLettersResponse {
	res := make([]IncomingLetterResponse, len(letters))
	for i, letter := range letters {
		res[i] = ToIncomingLetterResponse(&letter)
	}
	return ListIncomingLettersResponse{Letters: res}
}
