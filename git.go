package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
)

// gitRaw runs a git command in the specified directory and returns stdout untouched
func gitRaw(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.Output()
	return string(out), err
}

// git runs a git command in the specified directory and returns stdout
func git(dir string, args ...string) (string, error) {
	out, err := gitRaw(dir, args...)
	return strings.TrimSpace(out), err
}

// isGitRepo checks if a directory is inside a git repository
func isGitRepo(path string) bool {
	_, err := git(path, "rev-parse", "--git-dir")
	return err == nil
}

// cliRepo reads repository state by running the git binary
type cliRepo struct {
	dir string
}

// openCLI checks that dir is inside a git repository
func openCLI(dir string) (*cliRepo, error) {
	if !isGitRepo(dir) {
		return nil, fmt.Errorf("%w: %s", errNotARepository, dir)
	}
	return &cliRepo{dir: dir}, nil
}

func (r *cliRepo) Head() (Head, error) {
	commit, err := git(r.dir, "rev-parse", "--verify", "-q", "HEAD")
	if err != nil {
		return Head{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	// symbolic-ref fails when HEAD is detached
	branch, err := git(r.dir, "symbolic-ref", "-q", "--short", "HEAD")
	if err != nil {
		branch = "HEAD"
	}

	return Head{Shorthand: branch, Target: commit}, nil
}

func (r *cliRepo) Deltas() ([]ChangeKind, error) {
	out, err := gitRaw(r.dir, "status", "--porcelain=v1", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return parsePorcelain(out), nil
}

func (r *cliRepo) State() OperationState {
	gitDir, err := git(r.dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return Clean
	}
	return readState(osfs.New(gitDir))
}

// parsePorcelain classifies each entry of `git status --porcelain=v1 -z`
// output by its worktree column
func parsePorcelain(out string) []ChangeKind {
	var deltas []ChangeKind

	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 3 {
			continue
		}

		x, y := entry[0], entry[1]
		// Renames and copies in the index are followed by the source path
		if x == 'R' || x == 'C' {
			i++
		}

		deltas = append(deltas, porcelainChangeKind(x, y))
	}

	return deltas
}

func porcelainChangeKind(x, y byte) ChangeKind {
	switch {
	case x == 'U' || y == 'U' || (x == 'D' && y == 'D') || (x == 'A' && y == 'A'):
		return Conflicted
	case x == '?' && y == '?':
		return Untracked
	case x == '!' && y == '!':
		return Ignored
	}

	switch y {
	case 'M':
		return Modified
	case 'T':
		return TypeChanged
	case 'A':
		return Added
	case 'D':
		return Deleted
	case 'R':
		return Renamed
	case 'C':
		return Copied
	}
	return Unmodified
}
