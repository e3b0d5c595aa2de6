package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// KV is the minimal key-value contract the games persist through.
// Values are small JSON documents. Reads treat missing or unreadable
// data as absent; writes are best-effort — losing a record only causes
// content repeats, never wrong scoring.
type KV interface {
	// Get returns the stored value and true, or nil and false when the
	// key is absent or unreadable.
	Get(key string) ([]byte, bool)

	// Put stores the value under key, replacing any previous value.
	Put(key string, value []byte)
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KIDSLEARN_DB environment variable
// 2. $XDG_DATA_HOME/kidslearn/kidslearn.db
// 3. ~/.local/share/kidslearn/kidslearn.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KIDSLEARN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kidslearn", "kidslearn.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
