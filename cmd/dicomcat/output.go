package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

var (
	styleCard  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleWarn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleHead  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	styleCell  = lipgloss.NewStyle().Padding(0, 1)
)

type field struct {
	label string
	value string
	warn  bool
}

// renderCard draws a titled, bordered block of aligned label/value lines.
func renderCard(title string, fields []field) string {
	width := 0
	for _, f := range fields {
		if n := lipgloss.Width(f.label); n > width {
			width = n
		}
	}

	lines := []string{styleTitle.Render(title)}
	for _, f := range fields {
		label := styleLabel.Render(f.label + ":" + strings.Repeat(" ", width-lipgloss.Width(f.label)))
		value := styleValue.Render(f.value)
		if f.warn {
			value = styleWarn.Render(f.value)
		}
		lines = append(lines, label+" "+value)
	}
	return styleCard.Render(strings.Join(lines, "\n"))
}

// renderTable draws rows under a bold header row.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHead
			}
			return styleCell
		})
	return t.String()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// emit writes v as YAML, or the text rendering, depending on --output.
func (a *app) emit(w io.Writer, v any, text func() string) error {
	if a.output == outputYAML {
		return writeYAML(w, v)
	}
	_, err := fmt.Fprintln(w, text())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
