package domain

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func bubbleLines(t *testing.T, out string) []string {
	t.Helper()

	if !strings.HasSuffix(out, crab) {
		t.Fatalf("expected output to end with the crab, got:\n%s", out)
	}
	body := strings.TrimSuffix(out, crab)
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}

func TestSayBubble_SingleLine(t *testing.T) {
	got := SayBubble("hello world", SayWidth)

	want := " _____________\n" +
		"< hello world >\n" +
		" -------------\n" +
		crab
	if got != want {
		t.Errorf("unexpected bubble:\n%s\nwant:\n%s", got, want)
	}
}

func TestSayBubble_Deterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"

	first := SayBubble(text, SayWidth)
	for range 10 {
		if got := SayBubble(text, SayWidth); got != first {
			t.Fatalf("expected identical output, got:\n%s\nthen:\n%s", first, got)
		}
	}
}

func TestSayBubble_WrapsAtWidth(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines int
	}{
		{name: "two words lines", text: "the quick brown fox jumps over the lazy dog", wantLines: 2},
		{name: "long word is split", text: strings.Repeat("a", 40), wantLines: 2},
		{name: "explicit newlines kept", text: "one\ntwo\nthree", wantLines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := bubbleLines(t, SayBubble(tt.text, SayWidth))

			// top border, text lines, bottom border
			if len(lines) != tt.wantLines+2 {
				t.Fatalf("expected %d text lines, got %d:\n%s",
					tt.wantLines, len(lines)-2, strings.Join(lines, "\n"))
			}

			textLines := lines[1 : len(lines)-1]
			width := runewidth.StringWidth(textLines[0])
			for i, line := range textLines {
				if w := runewidth.StringWidth(line); w != width {
					t.Errorf("line %d: expected width %d, got %d (%q)", i, width, w, line)
				}
				if w := runewidth.StringWidth(line) - 4; w > SayWidth {
					t.Errorf("line %d: text width %d exceeds %d", i, w, SayWidth)
				}
			}

			if !strings.HasPrefix(textLines[0], "/ ") || !strings.HasSuffix(textLines[0], " \\") {
				t.Errorf("unexpected first line %q", textLines[0])
			}
			last := textLines[len(textLines)-1]
			if !strings.HasPrefix(last, "\\ ") || !strings.HasSuffix(last, " /") {
				t.Errorf("unexpected last line %q", last)
			}
			for _, line := range textLines[1 : len(textLines)-1] {
				if !strings.HasPrefix(line, "| ") || !strings.HasSuffix(line, " |") {
					t.Errorf("unexpected middle line %q", line)
				}
			}
		})
	}
}

func TestSayBubble_Empty(t *testing.T) {
	got := SayBubble("   ", SayWidth)

	want := " __\n" +
		"<  >\n" +
		" --\n" +
		crab
	if got != want {
		t.Errorf("unexpected bubble:\n%s\nwant:\n%s", got, want)
	}
}
