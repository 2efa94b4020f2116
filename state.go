package main

import (
	"github.com/go-git/go-billy/v5"
)

// readState determines the in-progress operation from the marker files git
// leaves in the git directory. Precedence matches git's own.
func readState(gitDir billy.Filesystem) OperationState {
	exists := func(name string) bool {
		_, err := gitDir.Stat(name)
		return err == nil
	}

	switch {
	case exists("rebase-merge/interactive"):
		return RebaseInteractive
	case exists("rebase-merge"):
		return RebaseMerge
	case exists("rebase-apply/rebasing"):
		return Rebase
	case exists("rebase-apply/applying"):
		return ApplyMailbox
	case exists("rebase-apply"):
		return ApplyMailboxOrRebase
	case exists("MERGE_HEAD"):
		return Merge
	case exists("REVERT_HEAD"):
		if exists("sequencer/todo") {
			return RevertSequence
		}
		return Revert
	case exists("CHERRY_PICK_HEAD"):
		if exists("sequencer/todo") {
			return CherryPickSequence
		}
		return CherryPick
	case exists("BISECT_LOG"):
		return Bisect
	}
	return Clean
}
