package domain

import "go.trai.ch/zerr"

var (
	// ErrCycleDetected is returned when the children relation loops back onto a node
	// that is still being expanded.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrParentCycle is returned when walking parent links never reaches a root.
	ErrParentCycle = zerr.New("parent chain does not terminate")

	// ErrUnknownNode is returned when a name or id does not refer to a live node.
	ErrUnknownNode = zerr.New("unknown node")

	// ErrDuplicateNode is returned when registering a node name that already exists.
	ErrDuplicateNode = zerr.New("node already exists")

	// ErrNodeAlreadyAttached is returned when attaching a node that already has a parent.
	ErrNodeAlreadyAttached = zerr.New("node already has a parent")

	// ErrNodeNotAttached is returned when detaching a node that has no parent.
	ErrNodeNotAttached = zerr.New("node has no parent")

	// ErrNodeHasChildren is returned when freeing a node that still has children.
	ErrNodeHasChildren = zerr.New("node still has children")

	// ErrInvalidTreeFile is returned when a tree file fails validation.
	ErrInvalidTreeFile = zerr.New("invalid tree file")

	// ErrNoTreeFiles is returned when a directory or glob argument names no tree files.
	ErrNoTreeFiles = zerr.New("no tree files found")

	// ErrRunawaySubscribers is returned when subscribers keep raising changes
	// past the flush round limit and the remaining notifications are dropped.
	ErrRunawaySubscribers = zerr.New("subscribers did not settle")

	// ErrNoTargetsSpecified is returned when a command needs at least one node name.
	ErrNoTargetsSpecified = zerr.New("no targets specified")
)
