// Package tui is the full-screen front-end for the word game: the root
// word up top, a text input, and the words played so far beneath it. It is
// pure presentation over game.Session.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/config"
	"github.com/domino14/silkworm/game"
	"github.com/domino14/silkworm/lexicon"
)

var (
	rootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	latestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

const maxVisibleWords = 12

type Model struct {
	cfg     *config.Config
	words   []string
	checker lexicon.Checker
	rng     game.RandSource
	rules   *game.Rules
	session *game.Session

	input  textinput.Model
	status string
	good   bool
}

func New(cfg *config.Config, words []string, checker lexicon.Checker) Model {
	inp := textinput.New()
	inp.Placeholder = "type a word"
	inp.Prompt = "> "
	inp.CharLimit = 64
	inp.Focus()

	tag := language.Make(cfg.GetString(config.ConfigDefaultLanguage))
	rules := game.NewRules(cfg, checker, tag)
	var rng game.RandSource
	if seed := cfg.GetString(config.ConfigSeed); seed != "" {
		rng = game.NewSeededRandSource(seed)
	} else {
		rng = game.NewRandSource()
	}

	m := Model{
		cfg:     cfg,
		words:   words,
		checker: checker,
		rng:     rng,
		rules:   rules,
		input:   inp,
	}
	m.session = game.NewSession(rules, game.PickRoot(words, rng))
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			m.session = game.NewSession(m.rules, game.PickRoot(m.words, m.rng))
			m.input.SetValue("")
			m.status = ""
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	raw := m.input.Value()
	word, err := m.session.Submit(raw)
	if err != nil {
		var rej *game.Rejection
		if errors.As(err, &rej) {
			m.status = rej.Title() + ": " + rej.Message()
			m.good = false
		}
		return
	}
	m.status = fmt.Sprintf("accepted: %v", word)
	m.good = true
	m.input.SetValue("")
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(rootStyle.Render(strings.ToUpper(m.session.Root())))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	used := m.session.Used()
	if len(used) == 0 {
		sb.WriteString(dimStyle.Render("no words yet"))
	} else {
		shown := used
		if len(shown) > maxVisibleWords {
			shown = shown[:maxVisibleWords]
		}
		for i, w := range shown {
			style := wordStyle
			if i == 0 {
				style = latestStyle
			}
			fmt.Fprintf(&sb, "%s  %s\n",
				dimStyle.Render(fmt.Sprintf("%2d.", len(used)-i)),
				style.Render(fmt.Sprintf("%s (%d)", w, len([]rune(w)))))
		}
		if len(used) > maxVisibleWords {
			sb.WriteString(dimStyle.Render(
				fmt.Sprintf("    ... and %d more\n", len(used)-maxVisibleWords)))
		}
	}
	sb.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.good {
			style = okStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("enter: submit  ctrl+n: new game  esc: quit"))
	return sb.String()
}
