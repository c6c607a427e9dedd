package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/bundlecheck/internal/output"
	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

// Runner produces one inspection pass
type Runner interface {
	Run() model.Result
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	msgStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

var layerColors = map[model.Layer]lipgloss.Color{
	model.LayerAPI:         lipgloss.Color("39"),
	model.LayerFile:        lipgloss.Color("33"),
	model.LayerCertificate: lipgloss.Color("170"),
}

var statusColors = map[model.Status]lipgloss.Color{
	model.StatusOK:           lipgloss.Color("42"),
	model.StatusNotAvailable: lipgloss.Color("214"),
	model.StatusNotFound:     lipgloss.Color("214"),
	model.StatusNotPresent:   lipgloss.Color("214"),
}

// chrome is the number of rows used by the title and help lines
const chrome = 5

type resultMsg model.Result

type tuiModel struct {
	runner      Runner
	result      model.Result
	loaded      bool
	viewport    viewport.Model
	ready       bool
	snapshotDir string
	message     string
	messageTime time.Time
	width       int
	height      int
}

func initialModel(r Runner) tuiModel {
	return tuiModel{runner: r, snapshotDir: "."}
}

func (m tuiModel) Init() tea.Cmd {
	return m.inspect()
}

// inspect re-runs the whole pass; the view shows the latest result only
func (m tuiModel) inspect() tea.Cmd {
	return func() tea.Msg {
		return resultMsg(m.runner.Run())
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.message = "Refreshed"
			m.messageTime = time.Now()
			return m, m.inspect()
		case "S", "s":
			m.saveSnapshot()
			return m, nil
		}
	case resultMsg:
		m.result = model.Result(msg)
		m.loaded = true
		m.refreshContent()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-chrome, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-chrome, 1)
		}
		m.refreshContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *tuiModel) refreshContent() {
	if !m.ready || !m.loaded {
		return
	}
	m.viewport.SetContent(renderCards(m.result, m.width))
}

func renderCards(r model.Result, width int) string {
	cardWidth := width - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	var b strings.Builder
	for _, line := range r.Lines {
		head := lipgloss.NewStyle().Foreground(layerColors[line.Layer]).Bold(true).
			Render(fmt.Sprintf("[%s] %s:", line.Layer.Title(), output.SanitizeTerminal(line.Label)))

		valueColor, ok := statusColors[line.Status]
		if !ok {
			valueColor = lipgloss.Color("160")
		}
		value := lipgloss.NewStyle().Foreground(valueColor).Render(output.SanitizeTerminal(line.Value))

		b.WriteString(cardStyle.Width(cardWidth).Render(head+"\n"+value) + "\n")
	}

	for _, w := range r.Warnings {
		b.WriteString(warnStyle.Render("! "+output.SanitizeTerminal(w)) + "\n")
	}
	return b.String()
}

// saveSnapshot writes the current result as Markdown next to the working
// directory
func (m *tuiModel) saveSnapshot() {
	now := time.Now()
	filename := filepath.Join(m.snapshotDir, fmt.Sprintf("bundlecheck_snapshot_%s.md", now.Format("20060102_150405")))

	err := os.WriteFile(filename, []byte(snapshotMarkdown(m.result, now)), 0o644)
	if err != nil {
		m.message = "Error saving snapshot: " + err.Error()
	} else {
		m.message = "Snapshot saved to " + filename
	}
	m.messageTime = now
}

func snapshotMarkdown(r model.Result, at time.Time) string {
	var content strings.Builder
	content.WriteString("# Bundle ID Snapshot - " + at.Format(time.RFC1123) + "\n\n")
	if r.Bundle != "" {
		content.WriteString("Bundle: " + codeSpan(singleLine(r.Bundle)) + "\n\n")
	}

	for _, line := range r.Lines {
		content.WriteString("## " + line.Layer.Title() + " - " + singleLine(line.Label) + "\n")
		value := output.SanitizeTerminal(line.Value)
		fence := backtickFence(value, 3)
		content.WriteString(fence + "\n" + value + "\n" + fence + "\n\n")
	}

	if len(r.Warnings) > 0 {
		content.WriteString("## Warnings\n")
		for _, w := range r.Warnings {
			content.WriteString("- " + singleLine(w) + "\n")
		}
	}
	return content.String()
}

// singleLine sanitizes s for headings and list items, which end at a newline
func singleLine(s string) string {
	return output.SanitizeTerminal(strings.ReplaceAll(s, "\n", " "))
}

// backtickFence returns a run of backticks longer than any run inside s and
// at least minLen long, so s cannot close the code block early
func backtickFence(s string, minLen int) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(minLen, longest+1))
}

func codeSpan(s string) string {
	fence := backtickFence(s, 1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

func (m tuiModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder

	title := "Bundle ID Inspection"
	if m.result.Bundle != "" {
		title += " · " + output.SanitizeTerminal(m.result.Bundle)
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	if !m.loaded {
		b.WriteString("  Inspecting...\n")
	} else {
		b.WriteString(m.viewport.View() + "\n")
	}

	if m.message != "" && time.Since(m.messageTime) < 3*time.Second {
		b.WriteString(msgStyle.Render(" "+m.message+" ") + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  q: quit • r: re-inspect • s: snapshot • ↑/↓: scroll") + "\n")
	return b.String()
}

func Run(r Runner) error {
	p := tea.NewProgram(initialModel(r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
