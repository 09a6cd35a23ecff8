package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/germanamz/minutes/pkg/providers/provider"
)

var listColumns = []string{"ID", "MODEL", "VENDOR", "DESCRIPTION", ""}

// writeProviderList prints descs as an aligned table.
func writeProviderList(w io.Writer, descs []provider.Descriptor) error {
	rows := make([][]string, 0, len(descs))
	for _, d := range descs {
		rows = append(rows, []string{d.ID, d.DisplayName, d.VendorName, d.Description, tags(d)})
	}

	widths := make([]int, len(listColumns))
	for i, c := range listColumns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render(formatRow(listColumns, widths))); err != nil {
		return err
	}

	for i, r := range rows {
		line := formatRow(r, widths)
		if descs[i].Recommended {
			line = recommendedStyle.Render(line)
		} else if descs[i].Free {
			line = freeStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// formatRow pads every cell but the last to its column width.
func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		if i == len(cells)-1 {
			padded[i] = c
			continue
		}
		padded[i] = runewidth.FillRight(c, widths[i])
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func tags(d provider.Descriptor) string {
	var t []string
	if d.Free {
		t = append(t, "free")
	}
	if d.Recommended {
		t = append(t, "recommended")
	}
	return strings.Join(t, ", ")
}
