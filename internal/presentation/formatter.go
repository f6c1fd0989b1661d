// Package presentation formats catalog data for the command line.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/reqdesk/internal/catalog"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const timeLayout = "2006-01-02 15:04"

// ValidateFormat reports whether format is supported.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format string
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format string) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatPage writes one page of requests.
func (f *Formatter) FormatPage(p PageDTO) error {
	switch f.format {
	case FormatJSON:
		return f.json(p)
	case FormatYAML:
		return f.yaml(p)
	}

	if p.Total == 0 {
		_, err := fmt.Fprintf(f.writer, "No requests in namespace %s.\n", p.Namespace)
		return err
	}
	rows := make([][]string, len(p.Requests))
	for i, r := range p.Requests {
		rows[i] = []string{r.ID, r.Status, r.CreatedAt.Format(timeLayout), r.LastModified.Format(timeLayout)}
	}
	if err := f.table([]string{"ID", "STATUS", "CREATED", "MODIFIED"}, rows, 1); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f.writer, "\nPage %d of %d (%d requests)\n", p.Page, p.TotalPages, p.Total)
	return err
}

// FormatNamespaces writes the namespace registry.
func (f *Formatter) FormatNamespaces(list []NamespaceDTO) error {
	switch f.format {
	case FormatJSON:
		return f.json(list)
	case FormatYAML:
		return f.yaml(list)
	}

	rows := make([][]string, len(list))
	for i, ns := range list {
		mark := ""
		if ns.Default {
			mark = "*"
		}
		rows[i] = []string{ns.ID, ns.Name, mark}
	}
	return f.table([]string{"ID", "NAME", "DEFAULT"}, rows, -1)
}

func (f *Formatter) json(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (f *Formatter) yaml(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// table writes aligned columns. statusCol, when >= 0, is coloured by status.
func (f *Formatter) table(header []string, rows [][]string, statusCol int) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	bold := color.New(color.Bold)
	line := func(cells []string, paint func(i int, s string) string) error {
		parts := make([]string, len(cells))
		for i, c := range cells {
			padded := runewidth.FillRight(c, widths[i])
			if i == len(cells)-1 {
				padded = c
			}
			parts[i] = paint(i, padded)
		}
		_, err := fmt.Fprintln(f.writer, strings.Join(parts, "  "))
		return err
	}

	if err := line(header, func(_ int, s string) string { return bold.Sprint(s) }); err != nil {
		return err
	}
	for _, row := range rows {
		err := line(row, func(i int, s string) string {
			if i == statusCol {
				return statusColor(strings.TrimSpace(s)).Sprint(s)
			}
			return s
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func statusColor(status string) *color.Color {
	switch catalog.Status(status) {
	case catalog.StatusPending:
		return color.New(color.FgYellow)
	case catalog.StatusProcessing:
		return color.New(color.FgCyan)
	case catalog.StatusCompleted:
		return color.New(color.FgGreen)
	case catalog.StatusFailed:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}
