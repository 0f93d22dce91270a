package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger records session lifecycle events to a file so aborted runs
// can be inspected afterwards. Seed material is never written: entries
// carry slot numbers only, since a word value or wordlist index is
// enough to reconstruct part of the mnemonic.
type Logger struct {
	log  zerolog.Logger
	file *os.File
}

// New opens (or creates) the event log at path, appending to an
// existing file. An empty path returns a disabled logger whose methods
// are no-ops.
func New(path string) (*Logger, error) {
	if path == "" {
		return &Logger{log: zerolog.Nop()}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: ensure log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{log: zerolog.New(f).With().Timestamp().Logger(), file: f}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Started records a run start with the loaded wordlist size.
func (l *Logger) Started(wordlistLen int) {
	l.log.Info().Int("wordlist_len", wordlistLen).Msg("session started")
}

// WordAccepted records that the given slot was filled.
func (l *Logger) WordAccepted(slot int) {
	l.log.Info().Int("slot", slot).Msg("word accepted")
}

// WordUndone records that the given slot was vacated.
func (l *Logger) WordUndone(slot int) {
	l.log.Info().Int("slot", slot).Msg("word undone")
}

// Completed records that the session reached its full word count.
func (l *Logger) Completed(words int) {
	l.log.Info().Int("words", words).Msg("session complete")
}
