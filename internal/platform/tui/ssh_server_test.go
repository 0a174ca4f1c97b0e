package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHostKeyPathCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host_key")

	got, err := hostKeyPath(path)
	if err != nil {
		t.Fatalf("hostKeyPath() error = %v", err)
	}
	if got != path {
		t.Errorf("hostKeyPath() = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not generated: %v", err)
	}
}
