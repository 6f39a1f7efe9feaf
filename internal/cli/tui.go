package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/selcraft/selcraft/pkg/errors"
	"github.com/selcraft/selcraft/pkg/selector"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// fragmentKind identifies one category of simple-selector fragment.
type fragmentKind int

const (
	kindElement fragmentKind = iota
	kindID
	kindClass
	kindAttribute
	kindPseudoClass
	kindPseudoElement
)

// kindLabels are the menu entries, in builder application order.
var kindLabels = [...]string{
	kindElement:       "element",
	kindID:            "id",
	kindClass:         "class",
	kindAttribute:     "attribute",
	kindPseudoClass:   "pseudo-class",
	kindPseudoElement: "pseudo-element",
}

// kindHints show the expected input format for each kind.
var kindHints = [...]string{
	kindElement:       "tag name, e.g. div",
	kindID:            "without #, e.g. main",
	kindClass:         "without ., e.g. active",
	kindAttribute:     "body without brackets, e.g. href^=\"https\"",
	kindPseudoClass:   "without :, e.g. hover",
	kindPseudoElement: "without ::, e.g. first-letter",
}

// fragment is one accepted (kind, value) pair.
type fragment struct {
	kind  fragmentKind
	value string
}

// apply adds the fragment to b and returns b for chaining.
func (f fragment) apply(b *selector.Builder) *selector.Builder {
	switch f.kind {
	case kindElement:
		return b.Element(f.value)
	case kindID:
		return b.ID(f.value)
	case kindClass:
		return b.Class(f.value)
	case kindAttribute:
		return b.Attr(f.value)
	case kindPseudoClass:
		return b.PseudoClass(f.value)
	default:
		return b.PseudoElement(f.value)
	}
}

// buildFrom replays fragments onto a fresh builder.
func buildFrom(fragments []fragment) *selector.Builder {
	b := new(selector.Builder)
	for _, f := range fragments {
		f.apply(b)
	}
	return b
}

// =============================================================================
// BuilderModel - Interactive selector composition
// =============================================================================

// BuilderModel is the bubbletea model for composing a selector fragment by
// fragment. Each accepted fragment is replayed onto a fresh builder, so a
// rejected fragment never poisons the chain.
type BuilderModel struct {
	Cursor    int
	Fragments []fragment
	Preview   string
	Final     string

	typing bool
	input  string
	errMsg string
}

// NewBuilderModel creates a new selector builder model.
func NewBuilderModel() BuilderModel {
	return BuilderModel{}
}

func (m BuilderModel) Init() tea.Cmd {
	return nil
}

func (m BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Final = m.Preview
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(kindLabels)-1 {
				m.Cursor++
			}
		case "u":
			if len(m.Fragments) > 0 {
				m.Fragments = m.Fragments[:len(m.Fragments)-1]
				m.Preview, _ = buildFrom(m.Fragments).Render()
				m.errMsg = ""
			}
		case "enter":
			m.typing = true
			m.input = ""
			m.errMsg = ""
		}
	}
	return m, nil
}

// updateTyping handles key presses while a fragment value is being entered.
func (m BuilderModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Final = m.Preview
		return m, tea.Quit
	case "esc":
		m.typing = false
		m.input = ""
	case "enter":
		m = m.commit()
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

// commit validates the pending fragment against the accepted ones and either
// appends it or surfaces the builder error.
func (m BuilderModel) commit() BuilderModel {
	value := strings.TrimSpace(m.input)
	if value == "" {
		m.typing = false
		return m
	}

	candidate := append(append([]fragment{}, m.Fragments...), fragment{
		kind:  fragmentKind(m.Cursor),
		value: value,
	})
	b := buildFrom(candidate)
	if err := b.Err(); err != nil {
		m.errMsg = fmt.Sprintf("[%s] %s", errors.GetCode(err), errors.UserMessage(err))
		m.typing = false
		return m
	}

	rendered, err := b.Render()
	if err != nil {
		m.errMsg = fmt.Sprintf("[%s] %s", errors.GetCode(err), errors.UserMessage(err))
		m.typing = false
		return m
	}

	m.Fragments = candidate
	m.Preview = rendered
	m.errMsg = ""
	m.typing = false
	return m
}

func (m BuilderModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Compose Selector"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ add fragment  u undo  q done"))
	b.WriteString("\n\n")

	for i, label := range kindLabels {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		count := 0
		for _, f := range m.Fragments {
			if f.kind == fragmentKind(i) {
				count++
			}
		}
		suffix := ""
		if count > 0 {
			suffix = listDimStyle.Render(fmt.Sprintf("  (%d)", count))
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(cursor+label) + suffix)
		} else {
			b.WriteString(listNormalStyle.Render(cursor+label) + suffix)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.typing {
		hint := kindHints[m.Cursor]
		b.WriteString(fmt.Sprintf("%s %s%s\n", StyleHighlight.Render(kindLabels[m.Cursor]+":"), m.input, listSelectedStyle.Render("█")))
		b.WriteString(listDimStyle.Render("  " + hint + "  (⏎ confirm, esc cancel)"))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(listErrorStyle.Render(iconError + " " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	preview := m.Preview
	if preview == "" {
		preview = listDimStyle.Render("(empty)")
	} else {
		preview = StyleValue.Render(preview)
	}
	b.WriteString(previewStyle.Render(preview))
	b.WriteString("\n")

	return b.String()
}

// tuiCommand creates the interactive selector builder command.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Compose a selector interactively",
		Long: `Tui opens an interactive prompt for composing a selector one
fragment at a time. Fragments that would violate ordering or duplicate
an existing fragment are rejected with the reason shown inline; the
current selector text is previewed as it grows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(NewBuilderModel())
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(BuilderModel)
			if !ok || fm.Final == "" {
				printInfo("No selector composed")
				return nil
			}

			printSuccess("Selector: %s", StyleHighlight.Render(fm.Final))
			return nil
		},
	}
}
