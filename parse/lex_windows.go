package parse

import (
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command-line string following cmd.exe conventions:
// double quotes group words, ^ escapes the next character, and backslashes
// are literal except when they precede a double quote (pairs collapse, an
// odd count escapes the quote).
func Split(s string) ([]string, error) {
	var tokens []string
	var arg strings.Builder
	inQuotes := false
	escaped := false

	flush := func() {
		if arg.Len() > 0 {
			tokens = append(tokens, arg.String())
			arg.Reset()
		}
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		if escaped {
			arg.WriteRune(r)
			escaped = false
			i += size
			continue
		}

		switch r {
		case '^':
			if inQuotes {
				arg.WriteRune(r)
			} else {
				escaped = true
			}
			i += size
		case '"':
			inQuotes = !inQuotes
			i += size
		case '\\':
			backslashes := 0
			for i < len(s) && s[i] == '\\' {
				backslashes++
				i++
			}
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat(`\`, backslashes/2))
				if backslashes%2 == 0 {
					inQuotes = !inQuotes
				} else {
					arg.WriteByte('"')
				}
				i++
			} else {
				arg.WriteString(strings.Repeat(`\`, backslashes))
			}
		case ' ', '\t', '\n', '\r':
			if inQuotes {
				arg.WriteRune(r)
			} else {
				flush()
			}
			i += size
		default:
			arg.WriteRune(r)
			i += size
		}
	}
	flush()

	return tokens, nil
}
