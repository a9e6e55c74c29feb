//go:build linux || darwin

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain words", input: "one two three", want: []string{"one", "two", "three"}},
		{name: "double quotes", input: `--opt "a value" x`, want: []string{"--opt", "a value", "x"}},
		{name: "single quotes", input: `'a value'`, want: []string{"a value"}},
		{name: "escaped space", input: `a\ b c`, want: []string{"a b", "c"}},
		{name: "collapsed whitespace", input: "  a   b  ", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	got, err := Split("")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`"unterminated`)
	assert.Error(t, err)
}
