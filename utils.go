package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) selectedPanel() *panel {
	if m.selected < 0 || m.selected >= len(m.panels) {
		return nil
	}
	return m.panels[m.selected]
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
)

func isHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	for _, tag := range []string{"<html", "<body", "<div", "<p", "<span"} {
		if strings.Contains(trimmed, tag) {
			return true
		}
	}
	return false
}

// htmlText drops markup. Every tag boundary becomes a line break so block
// elements do not run together.
func htmlText(html string) string {
	var sb strings.Builder
	sb.Grow(len(html))
	depth := 0
	for _, r := range html {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
			sb.WriteByte('\n')
		default:
			if depth == 0 {
				sb.WriteRune(r)
			}
		}
	}
	return htmlEntities.Replace(sb.String())
}

// cleanClipboardText reduces clipboard content to one board line: the
// first non-blank line with control characters dropped and runs of
// whitespace collapsed.
func cleanClipboardText(text string) string {
	if isHTML(text) {
		text = htmlText(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	for _, line := range strings.Split(text, "\n") {
		var result strings.Builder
		for _, r := range line {
			if r == '\t' {
				r = ' '
			}
			if r >= 32 && r != 127 {
				result.WriteRune(r)
			}
		}
		if cleaned := strings.Join(strings.Fields(result.String()), " "); cleaned != "" {
			return cleaned
		}
	}
	return ""
}
