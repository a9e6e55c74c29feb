package util

import (
	"os"
	"testing"
)

type fakeTerminal struct {
	result bool
}

func (f fakeTerminal) IsTerminal(fd int) bool {
	return f.result
}

func TestTerminalReader(t *testing.T) {
	var r TerminalReader = fakeTerminal{result: true}
	if !r.IsTerminal(0) {
		t.Error("fake terminal should report true")
	}

	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file must not be detected as a terminal")
	}
}
