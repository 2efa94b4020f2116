package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// goGitRepo reads repository state in-process with go-git
type goGitRepo struct {
	repo *gogit.Repository
}

// openGoGit opens the repository containing dir, walking up parent directories
func openGoGit(dir string) (*goGitRepo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNotARepository, err)
	}
	return &goGitRepo{repo: repo}, nil
}

func (r *goGitRepo) Head() (Head, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Head{}, err
	}

	head := Head{Shorthand: ref.Name().Short()}
	if !ref.Hash().IsZero() {
		head.Target = ref.Hash().String()
	}
	return head, nil
}

func (r *goGitRepo) Deltas() ([]ChangeKind, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, err
	}
	// Status only reads .gitignore files and info/exclude
	wt.Excludes = append(wt.Excludes, userExcludes(osfs.New("/"))...)

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to compute status: %w", err)
	}

	conflicts, err := r.conflicts()
	if err != nil {
		return nil, err
	}

	kinds := make(map[string]ChangeKind, len(status)+len(conflicts))
	for path, fs := range status {
		kinds[path] = goGitChangeKind(fs)
	}
	// Status reports unmerged paths as plain modifications
	for path := range conflicts {
		kinds[path] = Conflicted
	}

	deltas := make([]ChangeKind, 0, len(kinds))
	for _, path := range slices.Sorted(maps.Keys(kinds)) {
		deltas = append(deltas, kinds[path])
	}
	return deltas, nil
}

// conflicts returns the paths that have unmerged entries in the index
func (r *goGitRepo) conflicts() (map[string]bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	paths := make(map[string]bool)
	for _, e := range idx.Entries {
		// Merged entries are stored at stage 0. index.Merged does not match
		// what the decoder produces.
		if e.Stage != 0 {
			paths[e.Name] = true
		}
	}
	return paths, nil
}

// userExcludes loads the ignore patterns git reads from outside the
// repository: core.excludesFile from the global and system config, or
// $XDG_CONFIG_HOME/git/ignore when no global excludes file is set.
func userExcludes(root billy.Filesystem) []gitignore.Pattern {
	var ps []gitignore.Pattern
	if system, err := gitignore.LoadSystemPatterns(root); err == nil {
		ps = append(ps, system...)
	}

	global, err := gitignore.LoadGlobalPatterns(root)
	if err == nil && len(global) > 0 {
		return append(ps, global...)
	}
	return append(ps, xdgIgnorePatterns(root)...)
}

func xdgIgnorePatterns(root billy.Filesystem) []gitignore.Pattern {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".config")
	}

	data, err := util.ReadFile(root, filepath.Join(dir, "git", "ignore"))
	if err != nil {
		return nil
	}

	var ps []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps
}

func (r *goGitRepo) State() OperationState {
	fs, err := r.gitDir()
	if err != nil {
		return Clean
	}
	return readState(fs)
}

func (r *goGitRepo) gitDir() (billy.Filesystem, error) {
	storage, ok := r.repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, errors.New("repository is not stored on a filesystem")
	}
	return storage.Filesystem(), nil
}

// goGitChangeKind classifies a file by its worktree column. go-git has no
// status codes for type changes or unreadable files.
func goGitChangeKind(fs *gogit.FileStatus) ChangeKind {
	if fs.Staging == gogit.UpdatedButUnmerged || fs.Worktree == gogit.UpdatedButUnmerged {
		return Conflicted
	}

	switch fs.Worktree {
	case gogit.Untracked:
		return Untracked
	case gogit.Modified:
		return Modified
	case gogit.Added:
		return Added
	case gogit.Deleted:
		return Deleted
	case gogit.Renamed:
		return Renamed
	case gogit.Copied:
		return Copied
	}
	return Unmodified
}
