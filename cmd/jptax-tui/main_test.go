package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/jptax/internal/tui"
)

type stubWatcher struct{ err error }

func (s stubWatcher) Run(context.Context) error { return s.err }

func TestForwardWatchErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []tea.Msg
	}{
		{"watcher failure is reported", errors.New("watcher error: queue overflow"),
			[]tea.Msg{tui.WatchStoppedMsg{Err: errors.New("watcher error: queue overflow")}}},
		{"cancellation is silent", context.Canceled, nil},
		{"clean exit is silent", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent []tea.Msg
			forwardWatchErrors(context.Background(), stubWatcher{err: tt.err}, func(m tea.Msg) { sent = append(sent, m) })
			assert.Equal(t, tt.want, sent)
		})
	}
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"income", "tax", "watch", "debug", "log-file"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestRootCommand_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"--income", filepath.Join(dir, "income.yml"), "--tax", filepath.Join(dir, "tax.yml")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
