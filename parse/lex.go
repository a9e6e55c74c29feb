//go:build linux || darwin

package parse

import "github.com/google/shlex"

// Split tokenizes a command-line string using POSIX shell word-splitting
// rules (quoting and escaping included).
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
