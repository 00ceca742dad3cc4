package journal

import (
	"strings"
	"unicode"
)

// FirstWord returns the token preceding the first whitespace or sentence
// punctuation mark (".", ",", "!", "?") of a completion reply. "Happy."
// becomes "Happy"; an all-whitespace reply becomes "".
func FirstWord(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == ',' || r == '!' || r == '?'
	})
	if i == -1 {
		return s
	}
	return s[:i]
}

// ParsePromptLines splits a completion reply into prompt lines: blank lines
// are dropped, then any leading "<number>. " ordinal is stripped from each
// retained line, preserving order.
func ParsePromptLines(reply string) []string {
	var prompts []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		prompts = append(prompts, stripOrdinal(line))
	}
	return prompts
}

func stripOrdinal(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != '.' {
		return line
	}
	return strings.TrimSpace(line[i+1:])
}
