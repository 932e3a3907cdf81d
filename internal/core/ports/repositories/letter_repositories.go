package repositories

import (
	"context"
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// IncomingLetterFilter narrows list queries over incoming letters.
type IncomingLetterFilter struct {
	Status      *domain.IncomingLetterStatus
	Sensitivity *domain.Sensitivity
	CategoryID  *string
	Search      *string // Matches letter number, sender, or subject
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// IncomingLetterReader defines read operations for incoming letters
type IncomingLetterReader interface {
	// FindIncomingLetterByID retrieves a specific incoming letter by its ID.
	FindIncomingLetterByID(ctx context.Context, letterID string) (*domain.IncomingLetter, error)

	// FindIncomingLetterByNumber retrieves an incoming letter by its unique letter number.
	FindIncomingLetterByNumber(ctx context.Context, letterNumber string) (*domain.IncomingLetter, error)

	// FindIncomingLetters retrieves a filtered, paginated list of incoming letters.
	FindIncomingLetters(ctx context.Context, filter IncomingLetterFilter) ([]domain.IncomingLetter, error)
}

// IncomingLetterWriter defines write operations for incoming letters
type IncomingLetterWriter interface {
	// SaveIncomingLetter persists a new incoming letter.
	SaveIncomingLetter(ctx context.Context, letter domain.IncomingLetter) error

	// UpdateIncomingLetter updates an existing incoming letter.
	UpdateIncomingLetter(ctx context.Context, letter domain.IncomingLetter) error

	// DeleteIncomingLetter removes a letter and all of its routing actions in
	// one transaction.
	DeleteIncomingLetter(ctx context.Context, letterID string) error
}

// IncomingLetterRepositoryFacade combines all incoming-letter repository interfaces
type IncomingLetterRepositoryFacade interface {
	IncomingLetterReader
	IncomingLetterWriter
}

// OutgoingLetterFilter narrows list queries over outgoing letters.
type OutgoingLetterFilter struct {
	Status      *domain.OutgoingLetterStatus
	Sensitivity *domain.Sensitivity
	CategoryID  *string
	Search      *string // Matches letter number, destination, or subject
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// OutgoingLetterReader defines read operations for outgoing letters
type OutgoingLetterReader interface {
	// FindOutgoingLetterByID retrieves a specific outgoing letter by its ID.
	FindOutgoingLetterByID(ctx context.Context, letterID string) (*domain.OutgoingLetter, error)

	// FindOutgoingLetterByNumber retrieves an outgoing letter by its unique letter number.
	FindOutgoingLetterByNumber(ctx context.Context, letterNumber string) (*domain.OutgoingLetter, error)

	// FindOutgoingLetters retrieves a filtered, paginated list of outgoing letters.
	FindOutgoingLetters(ctx context.Context, filter OutgoingLetterFilter) ([]domain.OutgoingLetter, error)

	// FindOutgoingNumbersByDateRange returns the letter numbers of all outgoing
	// letters whose letter date falls within [from, to). Used by number generation.
	FindOutgoingNumbersByDateRange(ctx context.Context, from time.Time, to time.Time) ([]string, error)
}

// OutgoingLetterWriter defines write operations for outgoing letters
type OutgoingLetterWriter interface {
	// SaveOutgoingLetter persists a new outgoing letter. Returns
	// apperrors.ErrDuplicate when the letter number is already taken, so
	// callers that generated the number can retry allocation.
	SaveOutgoingLetter(ctx context.Context, letter domain.OutgoingLetter) error

	// UpdateOutgoingLetter updates an existing outgoing letter.
	UpdateOutgoingLetter(ctx context.Context, letter domain.OutgoingLetter) error

	// DeleteOutgoingLetter removes an outgoing letter.
	DeleteOutgoingLetter(ctx context.Context, letterID string) error
}

// OutgoingLetterRepositoryFacade combines all outgoing-letter repository interfaces
type OutgoingLetterRepositoryFacade interface {
	OutgoingLetterReader
	OutgoingLetterWriter
}
