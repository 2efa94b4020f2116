package main

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserExcludes(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		ignored []string
		kept    []string
	}{
		{
			name:  "none",
			files: map[string]string{"/home/u/.gitconfig": "[user]\n\tname = Tests\n"},
			kept:  []string{"x.swp", "notes.bak"},
		},
		{
			name: "global excludes file",
			files: map[string]string{
				"/home/u/.gitconfig": "[core]\n\texcludesfile = /home/u/ignore\n",
				"/home/u/ignore":     "*.swp\n",
			},
			ignored: []string{"x.swp"},
			kept:    []string{"main.go"},
		},
		{
			name: "xdg ignore when no excludes file",
			files: map[string]string{
				"/home/u/.config/git/ignore": "# editor\n*.bak\n\n",
			},
			ignored: []string{"notes.bak"},
			kept:    []string{"notes.txt"},
		},
		{
			name: "excludes file wins over xdg ignore",
			files: map[string]string{
				"/home/u/.gitconfig":         "[core]\n\texcludesfile = /home/u/ignore\n",
				"/home/u/ignore":             "*.swp\n",
				"/home/u/.config/git/ignore": "*.bak\n",
			},
			ignored: []string{"x.swp"},
			kept:    []string{"notes.bak"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", "/home/u")
			t.Setenv("XDG_CONFIG_HOME", "")

			fs := memfs.New()
			for name, content := range tt.files {
				require.NoError(t, util.WriteFile(fs, name, []byte(content), 0644))
			}

			m := gitignore.NewMatcher(userExcludes(fs))
			for _, name := range tt.ignored {
				assert.True(t, m.Match([]string{name}, false), name)
			}
			for _, name := range tt.kept {
				assert.False(t, m.Match([]string{name}, false), name)
			}
		})
	}
}
