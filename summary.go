package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// revisionLength is how many hex characters of the commit id are shown
const revisionLength = 13

var (
	errNotARepository   = errors.New("not a git repository")
	errUnresolvableHead = errors.New("cannot resolve HEAD")
	errMalformedBranch  = errors.New("HEAD has no short name")
)

// summarize derives everything the prompt line shows from a repository snapshot
func summarize(snap Snapshot, logger *slog.Logger) (Summary, error) {
	head, err := snap.Head()
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", errUnresolvableHead, err)
	}

	branch, err := branchLabel(head)
	if err != nil {
		return Summary{}, err
	}

	deltas, err := snap.Deltas()
	if err != nil {
		logger.Debug("status unavailable", "err", err)
		deltas = nil
	}

	state := snap.State()
	logger.Debug("snapshot", "branch", branch, "target", head.Target, "deltas", len(deltas), "state", state)

	return Summary{
		Branch:   branch,
		Revision: revision(head),
		Status:   statusGlyphs(deltas),
		State:    operationLabel(state),
	}, nil
}

// branchLabel returns the short name of HEAD
func branchLabel(head Head) (string, error) {
	if head.Shorthand == "" {
		return "", errMalformedBranch
	}
	return head.Shorthand, nil
}

// revision returns the abbreviated commit id HEAD points to. A resolved HEAD
// always has a target, so a missing one is a bug, not a repository condition.
func revision(head Head) string {
	if len(head.Target) < revisionLength {
		panic(fmt.Sprintf("HEAD %q has no direct target", head.Shorthand))
	}
	return head.Target[:revisionLength]
}

// statusGlyphs returns one glyph per kind of change seen, in first-seen order.
// Kinds sharing a glyph collapse into one.
func statusGlyphs(deltas []ChangeKind) string {
	var out strings.Builder
	seen := make(map[rune]bool)
	for _, kind := range deltas {
		g, ok := glyph(kind)
		if !ok || seen[g] {
			continue
		}
		seen[g] = true
		out.WriteRune(g)
	}
	return out.String()
}

func glyph(kind ChangeKind) (rune, bool) {
	switch kind {
	case Added:
		return '+', true
	case Deleted:
		return '-', true
	case Modified, Renamed, TypeChanged:
		return '*', true
	case Untracked:
		return '?', true
	case Conflicted:
		return '#', true
	case Unmodified, Copied, Ignored, Unreadable:
		return 0, false
	}
	panic(fmt.Sprintf("unhandled change kind %d", int(kind)))
}

// operationLabel names the in-progress operation, or returns "" when clean
func operationLabel(state OperationState) string {
	switch state {
	case Clean:
		return ""
	case Merge:
		return "merge"
	case Revert, RevertSequence:
		return "revert"
	case CherryPick, CherryPickSequence:
		return "cherry-pick"
	case Bisect:
		return "bisect"
	case Rebase, RebaseInteractive:
		return "rebase"
	case RebaseMerge:
		return "rebase-merge"
	case ApplyMailbox, ApplyMailboxOrRebase:
		return "apply-mailbox"
	}
	panic(fmt.Sprintf("unhandled operation state %d", int(state)))
}
