// Package ui holds the colored console helpers used by the CLI.
package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Banner prints the command header.
func Banner(subtitle string) {
	fmt.Printf("%s — %s\n\n", Brand.Sprint("nodegraph"), subtitle)
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// VisibleWidth is the number of terminal columns s occupies once color
// escapes are dropped. East Asian wide runes count twice.
func VisibleWidth(s string) int {
	n := 0
	for _, r := range ansiEscape.ReplaceAllString(s, "") {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-VisibleWidth(s)))
}

// Table prints rows under dimmed headers, columns sized to their widest
// visible cell. Cells beyond the header count are dropped.
func Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	cols := make([]int, len(headers))
	for i, h := range headers {
		cols[i] = VisibleWidth(h)
	}
	for _, row := range rows {
		for i := range min(len(row), len(cols)) {
			cols[i] = max(cols[i], VisibleWidth(row[i]))
		}
	}

	var head, rule strings.Builder
	for i, h := range headers {
		head.WriteString("  " + pad(h, cols[i]))
		rule.WriteString("  " + strings.Repeat("─", cols[i]))
	}
	Subtle.Println(head.String())
	Subtle.Println(rule.String())

	for _, row := range rows {
		var line strings.Builder
		for i := range min(len(row), len(cols)) {
			line.WriteString("  " + pad(row[i], cols[i]))
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}
}

// StatusIcon returns a check or cross mark.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

var titleCaser = cases.Title(language.English)

// Title title-cases s for display, treating '-' and '_' as word breaks.
func Title(s string) string {
	return titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(s))
}
