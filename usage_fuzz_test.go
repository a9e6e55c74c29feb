package usage

import (
	"testing"

	"github.com/cmdtext/usage/parse"
)

func FuzzNew(f *testing.F) {
	// Seed corpus with edge cases
	f.Add("usage: tool <a> [<b>] <c>...")
	f.Add("usage: tool\n  -v, --verbose  print more")
	f.Add("Usage: tool\nusage: tool sub <x>")
	f.Add("#\n#\nusage: x")
	f.Add("  -v  orphan switch")
	f.Add("usage: tool <<>>")
	f.Add("usage:")
	f.Add("usage: 漢字")
	f.Add("")
	f.Fuzz(func(t *testing.T, helpText string) {
		model, err := New(helpText)
		if err != nil {
			// grammar errors must be typed, never raw
			if _, ok := err.(*GrammarError); !ok {
				t.Fatalf("New returned a non-GrammarError: %v", err)
			}
			return
		}

		// Invariant: a valid model always has a main command and every
		// sub-command's full name extends the main command's name
		if model.Main() == nil {
			t.Fatal("valid model without a main command")
		}
		for _, c := range model.Commands() {
			if c == model.Main() {
				continue
			}
			if c.LocalName() == c.FullName() && len(model.Commands()) > 1 {
				t.Fatalf("sub-command %q kept its full name as local name", c.FullName())
			}
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("--opt value one two")
	f.Add("-sX -o:v")
	f.Add("-- -s --opt")
	f.Add("--opt= -s")
	f.Add("-")
	f.Add("--")
	f.Add("a b c d e")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil {
			return
		}

		model, err := New(`usage: tool <first> [<rest>...]
  -s, --switch  a switch
  -o, --opt <option>  an option`)
		if err != nil {
			t.Fatalf("fixed help text failed to build: %v", err)
		}

		res, err := model.Parse(args)
		if err != nil {
			if _, ok := err.(*ParseError); !ok {
				t.Fatalf("Parse returned a non-ParseError: %v", err)
			}
			return
		}

		// Invariant: declared switches are always present with a definite value
		if !res.Has("switch") {
			t.Fatal("declared switch absent from result")
		}
		// Invariant: a successful parse bound the required positional
		if _, ok := res.Get("first"); !ok {
			t.Fatal("required positional absent from successful result")
		}
	})
}
