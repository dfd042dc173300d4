package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go.lepak.sg/treesim/session"
	"go.lepak.sg/treesim/tree/traverse"
)

// Styles colours output by node status.
type Styles struct {
	Unvisited lipgloss.Style
	Active    lipgloss.Style
	Visited   lipgloss.Style
	Queued    lipgloss.Style
	Found     lipgloss.Style

	StepNo lipgloss.Style
	Title  lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Unvisited: lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e")),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2196f3")).Bold(true),
		Visited:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")),
		Queued:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffeb3b")),
		Found:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336")).Bold(true),

		StepNo: lipgloss.NewStyle().Faint(true).Width(5).Align(lipgloss.Right),
		Title:  lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

func (s Styles) Status(st traverse.Status) lipgloss.Style {
	switch st {
	case traverse.Unvisited:
		return s.Unvisited
	case traverse.Active:
		return s.Active
	case traverse.Visited:
		return s.Visited
	case traverse.Queued:
		return s.Queued
	case traverse.Found:
		return s.Found
	default:
		return lipgloss.NewStyle()
	}
}

// Step renders the nth step of a traversal on one line.
func (s Styles) Step(n int, step traverse.Step) string {
	return fmt.Sprintf("%s %s %s",
		s.StepNo.Render(fmt.Sprint(n)),
		s.Status(step.Status).Width(9).Render(step.Status.String()),
		step.Message)
}

// Counts renders a status histogram in status order, skipping zeros.
func (s Styles) Counts(c session.Counts) string {
	var out string
	for _, st := range []traverse.Status{traverse.Unvisited, traverse.Active, traverse.Queued, traverse.Visited, traverse.Found} {
		if c[st] == 0 {
			continue
		}
		if out != "" {
			out += " "
		}
		out += s.Status(st).Render(fmt.Sprintf("%s=%d", st, c[st]))
	}
	return out
}
