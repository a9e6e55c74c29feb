package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommands_SingleCommand(t *testing.T) {
	cmds, err := buildCommands(`
A tool that does things.

usage: tool <input> [<output>]
  -v, --verbose  print more
  -f, --format <format>  output format
`)
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	cmd := cmds[0]
	assert.Equal(t, "tool", cmd.FullName())
	assert.Equal(t, []PositionalArg{
		{Name: "input", Kind: RequiredSingle},
		{Name: "output", Kind: OptionalSingle},
	}, cmd.PositionalArgs())
	assert.Equal(t, []string{"verbose"}, cmd.Switches())

	target, ok := cmd.lookupFlag("f")
	require.True(t, ok)
	assert.Equal(t, "format", target.key)
	assert.False(t, target.isSwitch)

	long, ok := cmd.lookupFlag("format")
	require.True(t, ok)
	assert.Same(t, target, long, "short and long spellings should share one binding target")
}

func TestBuildCommands_HelpTextTrimmedAndComplete(t *testing.T) {
	cmds, err := buildCommands(`

A tool.

usage: tool <input>
  -v  print more

trailing notes

`)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "A tool.\n\nusage: tool <input>\n  -v  print more\n\ntrailing notes", cmds[0].Help())
}

func TestBuildCommands_SeparatorResetsLeadingParagraph(t *testing.T) {
	cmds, err := buildCommands(`
Main help.

usage: multi <command>
trailing text of the main command
#
Help for the add sub-command.

usage: multi add <name>
`)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Contains(t, cmds[0].Help(), "trailing text of the main command")
	assert.NotContains(t, cmds[1].Help(), "trailing text")
	assert.Contains(t, cmds[1].Help(), "Help for the add sub-command.")
}

func TestBuildCommands_ImplicitCommandBreakOnUsage(t *testing.T) {
	cmds, err := buildCommands(`
usage: multi <command>
usage: multi add <name>
usage: multi del <name>
`)
	require.NoError(t, err)
	assert.Len(t, cmds, 3)
}

func TestBuildCommands_Failures(t *testing.T) {
	tests := []struct {
		name     string
		helpText string
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "duplicate command",
			helpText: "usage: tool\nusage: tool",
			wantErr:  ErrCommandDefined,
			wantMsg:  "help text line 2: command already defined - tool",
		},
		{
			name:     "duplicate short option",
			helpText: "usage: tool\n  -s <first>  one\n  -s <second>  two",
			wantErr:  ErrOptionDefined,
			wantMsg:  "help text line 3: option already defined - s",
		},
		{
			name:     "duplicate long switch",
			helpText: "usage: tool\n  --dry-run  one\n  --dry-run  two",
			wantErr:  ErrOptionDefined,
		},
		{
			name:     "option result key collides with positional",
			helpText: "usage: tool <format>\n  -f, --format <format>  output format",
			wantErr:  ErrArgumentDefined,
		},
		{
			name:     "duplicate positional",
			helpText: "usage: tool <file> <file>",
			wantErr:  ErrArgumentDefined,
		},
		{
			name:     "option before any usage line",
			helpText: "  -v, --verbose  print more\nusage: tool",
			wantErr:  ErrOptionOutsideCommand,
		},
		{
			name:     "no command at all",
			helpText: "just some prose\nwithout any header",
			wantErr:  ErrNoCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildCommands(tt.helpText)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			var gerr *GrammarError
			assert.ErrorAs(t, err, &gerr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
