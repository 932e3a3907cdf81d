package services

import (
	"context"
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// IncomingLetterReaderSvc defines read operations for incoming letters
type IncomingLetterReaderSvc interface {
	// GetIncomingLetterByID retrieves an incoming letter by ID.
	GetIncomingLetterByID(ctx context.Context, letterID string) (*domain.IncomingLetter, error)

	// ListIncomingLetters retrieves a filtered, paginated list of incoming letters.
	ListIncomingLetters(ctx context.Context, req dto.ListIncomingLettersRequest) ([]domain.IncomingLetter, error)
}

// IncomingLetterWriterSvc defines write operations for incoming letters
type IncomingLetterWriterSvc interface {
	// CreateIncomingLetter registers a newly received letter.
	CreateIncomingLetter(ctx context.Context, req dto.CreateIncomingLetterRequest, requestingUserID string) (*domain.IncomingLetter, error)

	// UpdateIncomingLetter updates an existing incoming letter.
	UpdateIncomingLetter(ctx context.Context, letterID string, req dto.UpdateIncomingLetterRequest, requestingUserID string) (*domain.IncomingLetter, error)

	// DeleteIncomingLetter removes a letter and its routing actions. Archived
	// letters must be removed from the archive first.
	DeleteIncomingLetter(ctx context.Context, letterID string) error
}

// IncomingLetterSvcFacade combines all incoming-letter service interfaces
type IncomingLetterSvcFacade interface {
	IncomingLetterReaderSvc
	IncomingLetterWriterSvc
}

// OutgoingLetterReaderSvc defines read operations for outgoing letters
type OutgoingLetterReaderSvc interface {
	// GetOutgoingLetterByID retrieves an outgoing letter by ID.
	GetOutgoingLetterByID(ctx context.Context, letterID string) (*domain.OutgoingLetter, error)

	// ListOutgoingLetters retrieves a filtered, paginated list of outgoing letters.
	ListOutgoingLetters(ctx context.Context, req dto.ListOutgoingLettersRequest) ([]domain.OutgoingLetter, error)

	// PreviewNextLetterNumber returns the number the next outgoing letter dated
	// on the given day would receive, without reserving it.
	PreviewNextLetterNumber(ctx context.Context, letterDate time.Time) (string, error)
}

// OutgoingLetterWriterSvc defines write operations for outgoing letters
type OutgoingLetterWriterSvc interface {
	// CreateOutgoingLetter creates an outgoing letter, generating its number
	// when the request leaves it blank.
	CreateOutgoingLetter(ctx context.Context, req dto.CreateOutgoingLetterRequest, requestingUserID string) (*domain.OutgoingLetter, error)

	// UpdateOutgoingLetter updates an existing outgoing letter.
	UpdateOutgoingLetter(ctx context.Context, letterID string, req dto.UpdateOutgoingLetterRequest, requestingUserID string) (*domain.OutgoingLetter, error)

	// DeleteOutgoingLetter removes an outgoing letter. Archived letters must be
	// removed from the archive first.
	DeleteOutgoingLetter(ctx context.Context, letterID string) error
}

// OutgoingLetterSvcFacade combines all outgoing-letter service interfaces
type OutgoingLetterSvcFacade interface {
	OutgoingLetterReaderSvc
	OutgoingLetterWriterSvc
}
