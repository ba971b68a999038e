package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-golf/internal/games/golf"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "sessions.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("NewSSHServer() opened no store")
	}
	return srv
}

func TestSSHServerUnknownMode(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.DefaultMode = "minigolf"
	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("NewSSHServer() expected error for an unknown mode")
	}
}

func TestSSHServerSessionMode(t *testing.T) {
	srv := newTestSSHServer(t)
	t.Cleanup(func() { srv.Shutdown() })

	tests := []struct {
		cmd      []string
		expected string
	}{
		{nil, golf.IDEndless},
		{[]string{golf.IDRange}, golf.IDRange},
		{[]string{"nope"}, golf.IDEndless},
	}

	for _, tt := range tests {
		if got := srv.sessionMode(tt.cmd); got != tt.expected {
			t.Errorf("sessionMode(%v) = %s, expected %s", tt.cmd, got, tt.expected)
		}
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	srv := newTestSSHServer(t)

	if _, err := srv.store.TopSessions(golf.IDEndless, 1); err != nil {
		t.Fatalf("TopSessions() before Shutdown() failed: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if _, err := srv.store.TopSessions(golf.IDEndless, 1); err == nil {
		t.Error("store still open after Shutdown()")
	}
}
