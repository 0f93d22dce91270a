package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Size is the entry count the BIP-39 English list must have.
const Size = 2048

// List is a loaded wordlist. Read-only after construction.
type List struct {
	words   []string
	index   map[string]int // word -> 1-based position, first occurrence
	suggest Suggester
}

// Load reads one word per line from path, trimming whitespace and
// skipping blank lines. The result must hold exactly Size entries.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}
	return New(words, nil)
}

// New builds a List from an ordered word sequence. A nil suggester
// falls back to the Levenshtein defaults used for typo hints.
func New(words []string, s Suggester) (*List, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("wordlist: unexpected length %d (expected %d)", len(words), Size)
	}
	idx := make(map[string]int, len(words))
	for i, w := range words {
		if _, seen := idx[w]; !seen {
			idx[w] = i + 1
		}
	}
	if s == nil {
		s = Levenshtein{Max: 3, Cutoff: 0.75}
	}
	return &List{words: words, index: idx, suggest: s}, nil
}

// Len reports the entry count. Always Size for a constructed List.
func (l *List) Len() int { return len(l.words) }

// Word returns the entry at 1-based position pos.
func (l *List) Word(pos int) string { return l.words[pos-1] }

// Resolve maps a trimmed lowercase word to its 1-based position. A miss
// returns a *NotFoundError carrying up to three near matches.
func (l *List) Resolve(word string) (int, error) {
	if pos, ok := l.index[word]; ok {
		return pos, nil
	}
	return 0, &NotFoundError{Word: word, Suggestions: l.suggest.Suggest(word, l.words)}
}

// NotFoundError reports a word absent from the list, with typo hints.
type NotFoundError struct {
	Word        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("word %q is not in the BIP-39 list", e.Word)
	if len(e.Suggestions) > 0 {
		msg += ". Did you mean: " + strings.Join(e.Suggestions, ", ") + "?"
	}
	return msg
}
