package domain_test

import (
	"testing"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextIncomingStatus(t *testing.T) {
	testCases := []struct {
		name       string
		current    domain.IncomingLetterStatus
		event      domain.LetterEvent
		wantStatus domain.IncomingLetterStatus
		wantMoved  bool
	}{
		{"new letter gets routing", domain.IncomingNew, domain.EventRoutingCreated, domain.IncomingInProgress, true},
		{"in-progress letter gets another routing", domain.IncomingInProgress, domain.EventRoutingCreated, "", false},
		{"done letter gets routing", domain.IncomingDone, domain.EventRoutingCreated, "", false},
		{"all routing done from in-progress", domain.IncomingInProgress, domain.EventRoutingAllDone, domain.IncomingDone, true},
		{"all routing done from new", domain.IncomingNew, domain.EventRoutingAllDone, domain.IncomingDone, true},
		{"all routing done when already done", domain.IncomingDone, domain.EventRoutingAllDone, "", false},
		{"all routing done never unarchives", domain.IncomingArchived, domain.EventRoutingAllDone, "", false},
		{"archive new letter", domain.IncomingNew, domain.EventArchived, domain.IncomingArchived, true},
		{"archive in-progress letter", domain.IncomingInProgress, domain.EventArchived, domain.IncomingArchived, true},
		{"archive done letter", domain.IncomingDone, domain.EventArchived, domain.IncomingArchived, true},
		{"archive already archived letter", domain.IncomingArchived, domain.EventArchived, "", false},
		{"archive removal reverts to done", domain.IncomingArchived, domain.EventArchiveRemoved, domain.IncomingDone, true},
		{"archive removal on unarchived letter", domain.IncomingDone, domain.EventArchiveRemoved, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, moved := domain.NextIncomingStatus(tc.current, tc.event)
			assert.Equal(t, tc.wantMoved, moved)
			if tc.wantMoved {
				assert.Equal(t, tc.wantStatus, next)
			}
		})
	}
}

func TestNextOutgoingStatus(t *testing.T) {
	testCases := []struct {
		name       string
		current    domain.OutgoingLetterStatus
		event      domain.LetterEvent
		wantStatus domain.OutgoingLetterStatus
		wantMoved  bool
	}{
		{"archive draft letter", domain.OutgoingDraft, domain.EventArchived, domain.OutgoingArchived, true},
		{"archive sent letter", domain.OutgoingSent, domain.EventArchived, domain.OutgoingArchived, true},
		{"archive already archived letter", domain.OutgoingArchived, domain.EventArchived, "", false},
		{"archive removal reverts to sent", domain.OutgoingArchived, domain.EventArchiveRemoved, domain.OutgoingSent, true},
		{"archive removal on draft letter", domain.OutgoingDraft, domain.EventArchiveRemoved, "", false},
		{"routing events never touch outgoing letters", domain.OutgoingSent, domain.EventRoutingAllDone, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, moved := domain.NextOutgoingStatus(tc.current, tc.event)
			assert.Equal(t, tc.wantMoved, moved)
			if tc.wantMoved {
				assert.Equal(t, tc.wantStatus, next)
			}
		})
	}
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, domain.ValidIncomingLetterStatus(domain.IncomingNew))
	assert.False(t, domain.ValidIncomingLetterStatus("BARU"))
	assert.True(t, domain.ValidOutgoingLetterStatus(domain.OutgoingDraft))
	assert.False(t, domain.ValidOutgoingLetterStatus("TERKIRIM"))
	assert.True(t, domain.ValidRoutingActionStatus(domain.RoutingPending))
	assert.False(t, domain.ValidRoutingActionStatus(""))
	assert.True(t, domain.ValidRoutingPriority(domain.PriorityUrgent))
	assert.False(t, domain.ValidRoutingPriority("MEDIUM"))
	assert.True(t, domain.ValidSensitivity(domain.SensitivityConfidential))
	assert.False(t, domain.ValidSensitivity("RAHASIA"))
	assert.True(t, domain.ValidArchiveKind(domain.ArchiveOutgoing))
	assert.False(t, domain.ValidArchiveKind("MASUK"))
	assert.True(t, domain.ValidUserRole(domain.RoleKepala))
	assert.False(t, domain.ValidUserRole("superadmin"))
}
