package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
)

// fixedClock pins service time for deterministic numbering and audit fields.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var cat *domain.Category
	if args.Get(0) != nil {
		cat = args.Get(0).(*domain.Category)
	}
	return cat, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.Category, error) {
	args := m.Called(ctx, code)
	var cat *domain.Category
	if args.Get(0) != nil {
		cat = args.Get(0).(*domain.Category)
	}
	return cat, args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var cats []domain.Category
	if args.Get(0) != nil {
		cats = args.Get(0).([]domain.Category)
	}
	return cats, args.Error(1)
}

func (m *MockCategoryRepository) CountCategoryReferences(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock IncomingLetterRepository ---

type MockIncomingLetterRepository struct {
	mock.Mock
}

func (m *MockIncomingLetterRepository) FindIncomingLetterByID(ctx context.Context, letterID string) (*domain.IncomingLetter, error) {
	args := m.Called(ctx, letterID)
	var letter *domain.IncomingLetter
	if args.Get(0) != nil {
		letter = args.Get(0).(*domain.IncomingLetter)
	}
	return letter, args.Error(1)
}

func (m *MockIncomingLetterRepository) FindIncomingLetterByNumber(ctx context.Context, letterNumber string) (*domain.IncomingLetter, error) {
	args := m.Called(ctx, letterNumber)
	var letter *domain.IncomingLetter
	if args.Get(0) != nil {
		letter = args.Get(0).(*domain.IncomingLetter)
	}
	return letter, args.Error(1)
}

func (m *MockIncomingLetterRepository) FindIncomingLetters(ctx context.Context, filter portsrepo.IncomingLetterFilter) ([]domain.IncomingLetter, error) {
	args := m.Called(ctx, filter)
	var letters []domain.IncomingLetter
	if args.Get(0) != nil {
		letters = args.Get(0).([]domain.IncomingLetter)
	}
	return letters, args.Error(1)
}

func (m *MockIncomingLetterRepository) SaveIncomingLetter(ctx context.Context, letter domain.IncomingLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *MockIncomingLetterRepository) UpdateIncomingLetter(ctx context.Context, letter domain.IncomingLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *MockIncomingLetterRepository) DeleteIncomingLetter(ctx context.Context, letterID string) error {
	args := m.Called(ctx, letterID)
	return args.Error(0)
}

// --- Mock OutgoingLetterRepository ---

type MockOutgoingLetterRepository struct {
	mock.Mock
}

func (m *MockOutgoingLetterRepository) FindOutgoingLetterByID(ctx context.Context, letterID string) (*domain.OutgoingLetter, error) {
	args := m.Called(ctx, letterID)
	var letter *domain.OutgoingLetter
	if args.Get(0) != nil {
		letter = args.Get(0).(*domain.OutgoingLetter)
	}
	return letter, args.Error(1)
}

func (m *MockOutgoingLetterRepository) FindOutgoingLetterByNumber(ctx context.Context, letterNumber string) (*domain.OutgoingLetter, error) {
	args := m.Called(ctx, letterNumber)
	var letter *domain.OutgoingLetter
	if args.Get(0) != nil {
		letter = args.Get(0).(*domain.OutgoingLetter)
	}
	return letter, args.Error(1)
}

func (m *MockOutgoingLetterRepository) FindOutgoingLetters(ctx context.Context, filter portsrepo.OutgoingLetterFilter) ([]domain.OutgoingLetter, error) {
	args := m.Called(ctx, filter)
	var letters []domain.OutgoingLetter
	if args.Get(0) != nil {
		letters = args.Get(0).([]domain.OutgoingLetter)
	}
	return letters, args.Error(1)
}

func (m *MockOutgoingLetterRepository) FindOutgoingNumbersByDateRange(ctx context.Context, from time.Time, to time.Time) ([]string, error) {
	args := m.Called(ctx, from, to)
	var numbers []string
	if args.Get(0) != nil {
		numbers = args.Get(0).([]string)
	}
	return numbers, args.Error(1)
}

func (m *MockOutgoingLetterRepository) SaveOutgoingLetter(ctx context.Context, letter domain.OutgoingLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *MockOutgoingLetterRepository) UpdateOutgoingLetter(ctx context.Context, letter domain.OutgoingLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *MockOutgoingLetterRepository) DeleteOutgoingLetter(ctx context.Context, letterID string) error {
	args := m.Called(ctx, letterID)
	return args.Error(0)
}

// --- Mock RoutingActionRepository ---

type MockRoutingActionRepository struct {
	mock.Mock
}

func (m *MockRoutingActionRepository) FindRoutingActionByID(ctx context.Context, routingID string) (*domain.RoutingAction, error) {
	args := m.Called(ctx, routingID)
	var action *domain.RoutingAction
	if args.Get(0) != nil {
		action = args.Get(0).(*domain.RoutingAction)
	}
	return action, args.Error(1)
}

func (m *MockRoutingActionRepository) FindRoutingActions(ctx context.Context, filter portsrepo.RoutingActionFilter) ([]domain.RoutingAction, error) {
	args := m.Called(ctx, filter)
	var actions []domain.RoutingAction
	if args.Get(0) != nil {
		actions = args.Get(0).([]domain.RoutingAction)
	}
	return actions, args.Error(1)
}

func (m *MockRoutingActionRepository) CountOpenSiblingActions(ctx context.Context, incomingLetterID string, excludeRoutingID string) (int64, error) {
	args := m.Called(ctx, incomingLetterID, excludeRoutingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoutingActionRepository) SaveRoutingAction(ctx context.Context, action domain.RoutingAction, parentStatus *domain.IncomingLetterStatus) error {
	args := m.Called(ctx, action, parentStatus)
	return args.Error(0)
}

func (m *MockRoutingActionRepository) UpdateRoutingAction(ctx context.Context, action domain.RoutingAction, parentStatus *domain.IncomingLetterStatus) error {
	args := m.Called(ctx, action, parentStatus)
	return args.Error(0)
}

func (m *MockRoutingActionRepository) DeleteRoutingAction(ctx context.Context, routingID string) error {
	args := m.Called(ctx, routingID)
	return args.Error(0)
}

// --- Mock ArchiveEntryRepository ---

type MockArchiveEntryRepository struct {
	mock.Mock
}

func (m *MockArchiveEntryRepository) FindArchiveEntryByID(ctx context.Context, archiveID string) (*domain.ArchiveEntry, error) {
	args := m.Called(ctx, archiveID)
	var entry *domain.ArchiveEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.ArchiveEntry)
	}
	return entry, args.Error(1)
}

func (m *MockArchiveEntryRepository) FindArchiveEntryByLetter(ctx context.Context, kind domain.ArchiveKind, letterID string) (*domain.ArchiveEntry, error) {
	args := m.Called(ctx, kind, letterID)
	var entry *domain.ArchiveEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.ArchiveEntry)
	}
	return entry, args.Error(1)
}

func (m *MockArchiveEntryRepository) FindArchiveEntries(ctx context.Context, filter portsrepo.ArchiveEntryFilter) ([]domain.ArchiveEntry, error) {
	args := m.Called(ctx, filter)
	var entries []domain.ArchiveEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ArchiveEntry)
	}
	return entries, args.Error(1)
}

func (m *MockArchiveEntryRepository) FindLastArchiveNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockArchiveEntryRepository) SaveArchiveEntry(ctx context.Context, entry domain.ArchiveEntry, cascade portsrepo.LetterStatusCascade) error {
	args := m.Called(ctx, entry, cascade)
	return args.Error(0)
}

func (m *MockArchiveEntryRepository) UpdateArchiveEntry(ctx context.Context, entry domain.ArchiveEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockArchiveEntryRepository) DeleteArchiveEntry(ctx context.Context, archiveID string, cascade portsrepo.LetterStatusCascade, updatedAt time.Time) error {
	args := m.Called(ctx, archiveID, cascade, updatedAt)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}
