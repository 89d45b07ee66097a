package frame

import (
	"strings"
	"unicode/utf8"
)

func writeTable(sb *strings.Builder, header []string, rows [][]string) {
	var widths []int
	grow := func(cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}
	grow(header)
	for _, r := range rows {
		grow(r)
	}
	line := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)))
			}
		}
		sb.WriteByte('\n')
	}
	if header != nil {
		line(header)
	}
	for _, r := range rows {
		line(r)
	}
}
