//go:build windows

package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command line using cmd.exe-style quoting: double quotes
// group words, backslashes escape only a following quote, and ^ escapes the
// next character outside quotes.
func Split(s string) ([]string, error) {
	var tokens []string
	var builder strings.Builder
	inQuotes := false
	escaped := false

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}
		if r == '\n' || r == '\r' {
			r = ' '
		}

		if escaped {
			builder.WriteRune(r)
			escaped = false
			i += size
			continue
		}

		switch {
		case r == '^' && !inQuotes:
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == '\\' && i+size < len(s) && s[i+size] == '"':
			builder.WriteRune('"')
			i += size
		case (r == ' ' || r == '\t') && !inQuotes:
			if builder.Len() > 0 {
				tokens = append(tokens, builder.String())
				builder.Reset()
			}
		default:
			builder.WriteRune(r)
		}
		i += size
	}

	if builder.Len() > 0 {
		tokens = append(tokens, builder.String())
	}

	return tokens, nil
}
