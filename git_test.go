package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePorcelain(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []ChangeKind
	}{
		{"empty", "", nil},
		{"modified in worktree", " M file1\x00", []ChangeKind{Modified}},
		{"staged only", "M  file1\x00A  file2\x00", []ChangeKind{Unmodified, Unmodified}},
		{"untracked", "?? file2\x00", []ChangeKind{Untracked}},
		{"ignored", "!! build\x00", []ChangeKind{Ignored}},
		{"deleted", " D file1\x00", []ChangeKind{Deleted}},
		{"type changed", " T link\x00", []ChangeKind{TypeChanged}},
		{"intent to add", " A file3\x00", []ChangeKind{Added}},
		{"conflicts", "UU a\x00AA b\x00DD c\x00UD d\x00", []ChangeKind{Conflicted, Conflicted, Conflicted, Conflicted}},
		{"rename skips source path", "RM new\x00old\x00?? other\x00", []ChangeKind{Modified, Untracked}},
		{"copy skips source path", "C  copy\x00orig\x00 D gone\x00", []ChangeKind{Unmodified, Deleted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePorcelain(tt.out))
		})
	}
}
