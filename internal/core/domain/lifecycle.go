package domain

// LetterEvent is something that happens elsewhere in the system and may move a
// letter to a new status. Direct status writes through the API do not go
// through these tables (administrative override); every engine-driven cascade
// does, so the legal transition set stays auditable in one place.
type LetterEvent string

const (
	// EventRoutingCreated fires when a routing action is attached to a letter.
	EventRoutingCreated LetterEvent = "ROUTING_CREATED"
	// EventRoutingAllDone fires when the last open routing action of a letter
	// is marked done.
	EventRoutingAllDone LetterEvent = "ROUTING_ALL_DONE"
	// EventArchived fires when an archive entry referencing the letter is created.
	EventArchived LetterEvent = "ARCHIVED"
	// EventArchiveRemoved fires when the archive entry referencing the letter
	// is deleted.
	EventArchiveRemoved LetterEvent = "ARCHIVE_REMOVED"
)

type incomingTransition struct {
	from  IncomingLetterStatus
	event LetterEvent
}

var incomingTransitions = map[incomingTransition]IncomingLetterStatus{
	{IncomingNew, EventRoutingCreated}: IncomingInProgress,

	{IncomingNew, EventRoutingAllDone}:        IncomingDone,
	{IncomingInProgress, EventRoutingAllDone}: IncomingDone,

	{IncomingNew, EventArchived}:        IncomingArchived,
	{IncomingInProgress, EventArchived}: IncomingArchived,
	{IncomingDone, EventArchived}:       IncomingArchived,

	// Archival reversal always lands on DONE, never on an earlier state.
	{IncomingArchived, EventArchiveRemoved}: IncomingDone,
}

// NextIncomingStatus returns the status an incoming letter moves to when the
// event fires, and whether the event causes a transition at all. A false
// result means the letter keeps its current status.
func NextIncomingStatus(current IncomingLetterStatus, event LetterEvent) (IncomingLetterStatus, bool) {
	next, ok := incomingTransitions[incomingTransition{current, event}]
	return next, ok
}

type outgoingTransition struct {
	from  OutgoingLetterStatus
	event LetterEvent
}

var outgoingTransitions = map[outgoingTransition]OutgoingLetterStatus{
	{OutgoingDraft, EventArchived}: OutgoingArchived,
	{OutgoingSent, EventArchived}:  OutgoingArchived,

	// Archival reversal always lands on SENT.
	{OutgoingArchived, EventArchiveRemoved}: OutgoingSent,
}

// NextOutgoingStatus returns the status an outgoing letter moves to when the
// event fires, and whether the event causes a transition at all.
func NextOutgoingStatus(current OutgoingLetterStatus, event LetterEvent) (OutgoingLetterStatus, bool) {
	next, ok := outgoingTransitions[outgoingTransition{current, event}]
	return next, ok
}
