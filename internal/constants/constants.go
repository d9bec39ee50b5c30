package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserKind = "user_kind"
)

// DefaultConfirmedHours is credited when attendance is confirmed without an
// explicit hour count.
const DefaultConfirmedHours = 1

// DefaultCategory is used in statistics for postings without a category.
const DefaultCategory = "Geral"
