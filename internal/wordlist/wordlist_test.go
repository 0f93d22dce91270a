package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testWords builds a full-size synthetic list: "abandon" first, "zoo"
// last, distinct filler in between.
func testWords() []string {
	words := make([]string, Size)
	words[0] = "abandon"
	words[1] = "ability"
	for i := 2; i < Size-1; i++ {
		words[i] = fmt.Sprintf("word%04d", i+1)
	}
	words[Size-1] = "zoo"
	return words
}

func TestNewRejectsWrongLength(t *testing.T) {
	t.Parallel()

	_, err := New([]string{"abandon", "zoo"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2048")

	_, err = New(append(testWords(), "extra"), nil)
	require.Error(t, err)
}

func TestLoadTrimsAndSkipsBlankLines(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i, w := range testWords() {
		fmt.Fprintf(&b, "  %s \n", w)
		if i%100 == 0 {
			b.WriteString("\n") // blank lines are ignored
		}
	}
	path := filepath.Join(t.TempDir(), "bip39_en.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Size, l.Len())
	require.Equal(t, "abandon", l.Word(1))
	require.Equal(t, "zoo", l.Word(Size))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestLoadWrongCount(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("abandon\nzoo\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected length")
}

func TestResolveExactAndIdempotent(t *testing.T) {
	t.Parallel()

	l, err := New(testWords(), nil)
	require.NoError(t, err)

	for pos := 1; pos <= Size; pos++ {
		w := l.Word(pos)
		got, err := l.Resolve(w)
		require.NoError(t, err)
		require.Equal(t, pos, got)

		again, err := l.Resolve(w)
		require.NoError(t, err)
		require.Equal(t, got, again)
	}
}

func TestResolveEndpoints(t *testing.T) {
	t.Parallel()

	l, err := New(testWords(), nil)
	require.NoError(t, err)

	pos, err := l.Resolve("abandon")
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	pos, err = l.Resolve("zoo")
	require.NoError(t, err)
	require.Equal(t, 2048, pos)
}

func TestResolveFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	words := testWords()
	words[100] = "dupword"
	words[200] = "dupword"
	l, err := New(words, nil)
	require.NoError(t, err)

	pos, err := l.Resolve("dupword")
	require.NoError(t, err)
	require.Equal(t, 101, pos)
}

func TestResolveMissReturnsSuggestions(t *testing.T) {
	t.Parallel()

	l, err := New(testWords(), nil)
	require.NoError(t, err)

	_, err = l.Resolve("abandan")
	require.Error(t, err)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "abandan", nf.Word)
	require.NotEmpty(t, nf.Suggestions)
	require.LessOrEqual(t, len(nf.Suggestions), 3)
	require.Contains(t, nf.Suggestions, "abandon")
	for _, s := range nf.Suggestions {
		_, err := l.Resolve(s)
		require.NoError(t, err, "suggestion %q must be a list member", s)
	}
	require.Contains(t, err.Error(), "abandan")
	require.Contains(t, err.Error(), "Did you mean")
}

func TestResolveMissWithNoNearMatches(t *testing.T) {
	t.Parallel()

	l, err := New(testWords(), nil)
	require.NoError(t, err)

	_, err = l.Resolve("qqqqqqqqqqqq")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Empty(t, nf.Suggestions)
	require.NotContains(t, err.Error(), "Did you mean")
}

type stubSuggester struct{ out []string }

func (s stubSuggester) Suggest(string, []string) []string { return s.out }

func TestSuggesterIsPluggable(t *testing.T) {
	t.Parallel()

	l, err := New(testWords(), stubSuggester{out: []string{"ability"}})
	require.NoError(t, err)

	_, err = l.Resolve("abilty")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, []string{"ability"}, nf.Suggestions)
}
