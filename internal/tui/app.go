package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/seedplate/internal/config"
	"github.com/jask/seedplate/internal/logging"
	"github.com/jask/seedplate/internal/punch"
	"github.com/jask/seedplate/internal/session"
	"github.com/jask/seedplate/internal/wordlist"
)

// App collects the mnemonic one word at a time. It owns the session
// for the lifetime of the program; nothing else mutates it.
type App struct {
	cfg       config.Config
	words     *wordlist.List
	sess      *session.Session
	logger    *logging.Logger
	input     textinput.Model
	state     appState
	status    string
	statusErr bool
	history   []string
}

type appState string

const (
	stateCollecting appState = "collecting"
	stateComplete   appState = "complete"
)

// historyWindow caps the acknowledgment lines kept on screen.
const historyWindow = 6

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	ackStyle       = lipgloss.NewStyle().Faint(true)
	statusOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func New(cfg config.Config, words *wordlist.List, sess *session.Session, logger *logging.Logger) *App {
	inp := textinput.New()
	inp.Placeholder = "word"
	inp.CharLimit = 32
	inp.Focus()
	a := &App{cfg: cfg, words: words, sess: sess, logger: logger, input: inp, state: stateCollecting}
	a.refreshPrompt()
	return a
}

// Done reports whether the session reached its full word count.
func (a *App) Done() bool { return a.state == stateComplete }

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "enter":
			return a.submit()
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	raw := strings.ToLower(strings.TrimSpace(a.input.Value()))
	a.input.SetValue("")

	switch raw {
	case "":
		a.setStatus("Enter a word, or 'back' to remove the last one.", false)
		return a, nil
	case "back", "undo":
		e, ok := a.sess.Undo()
		if !ok {
			a.setStatus("Nothing to remove.", false)
			return a, nil
		}
		a.logger.WordUndone(a.sess.Len() + 1)
		a.pushHistory(fmt.Sprintf("removed %q (index %d)", e.Word, e.Index))
		a.setStatus(fmt.Sprintf("Removed %q.", e.Word), false)
		a.refreshPrompt()
		return a, nil
	}

	idx, err := a.words.Resolve(raw)
	if err != nil {
		a.setStatus(err.Error(), true)
		return a, nil
	}
	weights, err := punch.Decompose(idx)
	if err != nil {
		a.setStatus(err.Error(), true)
		return a, nil
	}
	if err := a.sess.Add(raw, idx); err != nil {
		a.setStatus(err.Error(), true)
		return a, nil
	}
	a.logger.WordAccepted(a.sess.Len())
	a.pushHistory(fmt.Sprintf("%q: index=%d; punch=%v", raw, idx, weights))
	a.setStatus("", false)
	a.refreshPrompt()

	if a.sess.Complete() {
		a.state = stateComplete
		a.logger.Completed(a.sess.Len())
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) View() string {
	if a.state == stateComplete {
		return statusOKStyle.Render(fmt.Sprintf("All %d words captured.", a.sess.Capacity())) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("seedplate"))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  enter your %d BIP-39 words · 'back' removes the last word · ctrl+c quits", a.sess.Capacity())))
	b.WriteString("\n\n")

	for _, line := range a.history {
		b.WriteString(ackStyle.Render("  → " + line))
		b.WriteString("\n")
	}
	if len(a.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(a.input.View())
	b.WriteString("\n")

	if a.status != "" {
		style := statusOKStyle
		if a.statusErr {
			style = statusErrStyle
		}
		b.WriteString(style.Render(a.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) refreshPrompt() {
	a.input.Prompt = fmt.Sprintf("Word #%02d: ", a.sess.Len()+1)
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a *App) pushHistory(line string) {
	a.history = append(a.history, line)
	if len(a.history) > historyWindow {
		a.history = a.history[len(a.history)-historyWindow:]
	}
}
