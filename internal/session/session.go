package session

import "fmt"

// Entry is one accepted word with its 1-based wordlist position.
// Immutable once created; only the newest entry can be removed.
type Entry struct {
	Word  string
	Index int
}

// Session accumulates accepted words up to a fixed capacity. The only
// mutations are Add (append) and Undo (remove newest).
type Session struct {
	capacity int
	entries  []Entry
}

// New returns an empty session that completes at capacity entries.
func New(capacity int) *Session {
	return &Session{capacity: capacity, entries: make([]Entry, 0, capacity)}
}

// Add appends an accepted word. Fails once the session is complete.
func (s *Session) Add(word string, index int) error {
	if s.Complete() {
		return fmt.Errorf("session: already holds %d words", s.capacity)
	}
	s.entries = append(s.entries, Entry{Word: word, Index: index})
	return nil
}

// Undo removes and returns the newest entry. ok is false when empty.
func (s *Session) Undo() (e Entry, ok bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	e = s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e, true
}

// Len reports the number of held entries.
func (s *Session) Len() int { return len(s.entries) }

// Capacity reports the number of entries required to complete.
func (s *Session) Capacity() int { return s.capacity }

// Complete reports whether the session holds its full word count.
func (s *Session) Complete() bool { return len(s.entries) == s.capacity }

// Entries returns a copy of the accepted entries in order.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Blocks partitions a complete session into consecutive plate blocks of
// rows entries each.
func (s *Session) Blocks(rows int) ([][]Entry, error) {
	if !s.Complete() {
		return nil, fmt.Errorf("session: %d of %d words held", len(s.entries), s.capacity)
	}
	if rows <= 0 || s.capacity%rows != 0 {
		return nil, fmt.Errorf("session: %d words do not split into plates of %d rows", s.capacity, rows)
	}
	blocks := make([][]Entry, 0, s.capacity/rows)
	for start := 0; start < len(s.entries); start += rows {
		block := make([]Entry, rows)
		copy(block, s.entries[start:start+rows])
		blocks = append(blocks, block)
	}
	return blocks, nil
}
