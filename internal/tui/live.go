// Package tui renders the block-by-block solve as a live terminal
// view: one block advances per tick, the partial trajectory is
// plotted, and the running residual is shown alongside.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/IgorGayday/qde/internal/solver"
)

const (
	plotWidth  = 64
	plotHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a solver.Stepper one block per tick.
type Model struct {
	stepper *solver.Stepper
	name    string
	running bool
	done    bool
	err     error
}

func NewModel(st *solver.Stepper, name string) Model {
	return Model{stepper: st, name: name, running: true}
}

// Err reports the failure that ended the run, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && !m.done {
			done, err := m.stepper.Next()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.done = done
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	solved, total := m.stepper.Progress()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "SOLVING"
	switch {
	case m.done:
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if solved > 1 {
		chart := asciigraph.Plot(m.stepper.Solution()[:solved],
			asciigraph.Height(plotHeight), asciigraph.Width(plotWidth),
			asciigraph.Caption("solution"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d/%d", solved, total)) + "\n")
	s.WriteString(labelStyle.Render("Residual") + valueStyle.Render(fmt.Sprintf("%.6g", m.stepper.Energy())) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause Q:Quit"))
	return s.String()
}

// Run drives the live view to completion or quit.
func Run(st *solver.Stepper, name string) error {
	program := tea.NewProgram(NewModel(st, name))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
