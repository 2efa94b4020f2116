package main

// Head is the repository's current HEAD reference
type Head struct {
	// Shorthand is the short branch name, "HEAD" when detached, or empty when
	// the reference has no short name.
	Shorthand string
	// Target is the full hex id of the commit HEAD resolves to, or empty when
	// HEAD does not resolve to a commit.
	Target string
}

// ChangeKind classifies how a path differs between the index and the working tree
type ChangeKind int

const (
	Unmodified ChangeKind = iota
	Added
	Deleted
	Modified
	Renamed
	TypeChanged
	Copied
	Ignored
	Untracked
	Unreadable
	Conflicted
)

func (k ChangeKind) String() string {
	switch k {
	case Unmodified:
		return "unmodified"
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Modified:
		return "modified"
	case Renamed:
		return "renamed"
	case TypeChanged:
		return "type-changed"
	case Copied:
		return "copied"
	case Ignored:
		return "ignored"
	case Untracked:
		return "untracked"
	case Unreadable:
		return "unreadable"
	case Conflicted:
		return "conflicted"
	}
	return "unknown"
}

// OperationState is the multi-step operation a repository is in the middle of
type OperationState int

const (
	Clean OperationState = iota
	Merge
	Revert
	RevertSequence
	CherryPick
	CherryPickSequence
	Bisect
	Rebase
	RebaseInteractive
	RebaseMerge
	ApplyMailbox
	ApplyMailboxOrRebase
)

func (s OperationState) String() string {
	switch s {
	case Clean:
		return "clean"
	case Merge:
		return "merge"
	case Revert:
		return "revert"
	case RevertSequence:
		return "revert-sequence"
	case CherryPick:
		return "cherry-pick"
	case CherryPickSequence:
		return "cherry-pick-sequence"
	case Bisect:
		return "bisect"
	case Rebase:
		return "rebase"
	case RebaseInteractive:
		return "rebase-interactive"
	case RebaseMerge:
		return "rebase-merge"
	case ApplyMailbox:
		return "apply-mailbox"
	case ApplyMailboxOrRebase:
		return "apply-mailbox-or-rebase"
	}
	return "unknown"
}

// Snapshot is a read-only view of an opened repository
type Snapshot interface {
	Head() (Head, error)
	// Deltas returns the change kind of every path that differs between the
	// index and the working tree. Order is backend-defined.
	Deltas() ([]ChangeKind, error)
	State() OperationState
}

// Summary is everything the prompt line shows. Empty optional fields are absent.
type Summary struct {
	Branch   string
	Revision string
	Status   string
	State    string
}
