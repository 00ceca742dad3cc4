package journal

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// HistoryLimit bounds the journal log. Appending a 51st entry evicts the
// oldest.
const HistoryLimit = 50

// Store persists the journal log as a single JSON array in one file, newest
// entry first. The file is the single source of truth; every mutation is a
// full read-modify-write cycle.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the current log. Reads fail soft: a missing, unreadable, or
// malformed file behaves as an empty log and never raises.
func (s *Store) Load() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Append prepends e, truncates the log to HistoryLimit entries, and rewrites
// the whole file atomically. Unlike reads, a failed write is reported so the
// caller can surface a warning instead of losing the entry silently.
func (s *Store) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append([]Entry{e}, s.read()...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	if err := writeFileAtomicSameDir(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

func (s *Store) read() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Entry{}
	}
	var history []Entry
	if err := json.Unmarshal(data, &history); err != nil {
		return []Entry{}
	}
	return history
}

func writeFileAtomicSameDir(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_journal_*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write([]byte("\n")); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
