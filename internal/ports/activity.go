package ports

// ActivityLog is the host's single activity sink. Lines follow the
// "<ComponentTag>: <free-text>" convention; the adapter owns the tag.
type ActivityLog interface {
	Activity(format string, args ...any)
}
