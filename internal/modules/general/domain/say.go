package domain

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// SayWidth is the column at which Say wraps its text.
const SayWidth = 26

const crab = `        \
         \
            _~^~^~_
        \) /  o o  \ (/
          '_   -   _'
          / '-----' \
`

// SayBubble draws text in a speech bubble above a crab. Text is wrapped on
// word boundaries at width display columns; words longer than width are split.
func SayBubble(text string, width int) string {
	lines := wrapLines(text, width)

	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, runewidth.StringWidth(line))
	}

	var b strings.Builder
	b.WriteString(" " + strings.Repeat("_", maxWidth+2) + "\n")

	if len(lines) == 1 {
		b.WriteString("< " + lines[0] + " >\n")
	} else {
		for i, line := range lines {
			left, right := "|", "|"
			switch i {
			case 0:
				left, right = "/", "\\"
			case len(lines) - 1:
				left, right = "\\", "/"
			}
			b.WriteString(left + " " + runewidth.FillRight(line, maxWidth) + " " + right + "\n")
		}
	}

	b.WriteString(" " + strings.Repeat("-", maxWidth+2) + "\n")
	b.WriteString(crab)

	return b.String()
}

func wrapLines(text string, width int) []string {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	if width > 0 {
		text = wrap.String(wordwrap.String(text, width), width)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}
