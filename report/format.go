// SPDX-License-Identifier: MIT
// Package: ninefold/report
//
// format.go — output formats and the table adapter.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering.
type Format uint8

const (
	Table Format = iota
	Markdown
	JSON
	YAML
)

// String returns "table", "markdown", "json" or "yaml".
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "table"
	}
}

// ParseFormat is the inverse of String; "md" and "yml" are accepted too.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return Table, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return Table, fmt.Errorf("ParseFormat(%q): %w", s, ErrBadFormat)
}

// structured reports whether f encodes values instead of drawing tables.
func (f Format) structured() bool { return f == JSON || f == YAML }

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report.Encode: json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report.Encode: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report.Encode: yaml: %w", err)
		}
	default:
		return fmt.Errorf("report.Encode(%s): %w", f, ErrBadFormat)
	}

	return nil
}

// tableBuilder wraps a go-pretty writer rendered in a fixed mode.
type tableBuilder struct {
	writer table.Writer
	mode   Format
}

func newTable(f Format, title string) *tableBuilder {
	w := table.NewWriter()
	if f != Markdown {
		w.SetStyle(table.StyleLight)
	}
	if title != "" {
		w.SetTitle(title)
	}

	return &tableBuilder{writer: w, mode: f}
}

func (b *tableBuilder) header(cols ...any) { b.writer.AppendHeader(table.Row(cols)) }

func (b *tableBuilder) row(vals ...any) { b.writer.AppendRow(table.Row(vals)) }

func (b *tableBuilder) footer(vals ...any) { b.writer.AppendFooter(table.Row(vals)) }

// alignRight right-aligns the 1-based columns cols.
func (b *tableBuilder) alignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	b.writer.SetColumnConfigs(cfgs)
}

func (b *tableBuilder) String() string {
	if b.mode == Markdown {
		return b.writer.RenderMarkdown()
	}

	return b.writer.Render()
}

func writeTables(w io.Writer, tables ...*tableBuilder) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, t.String()+"\n"); err != nil {
			return err
		}
	}

	return nil
}

func f4(v float64) string { return fmt.Sprintf("%.4f", v) }

// pct renders a fraction in [0,1] as a percentage.
func pct(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }
