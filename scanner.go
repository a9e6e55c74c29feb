package usage

import (
	"regexp"
	"strings"
)

// The help-text dialect is a small fixed set of line patterns, tested in
// priority order:
//
//	usage: name [sub...] <arg> [<opt>] <rest>...   command header
//	-f, --format <format>  description             option, combined spellings
//	--format <format>  description                 option, single spelling
//	-v, --verbose  description                     switch, combined spellings
//	-v  description                                switch, single spelling
//	# (first non-blank character)                  paragraph separator
//
// Anything else is plain help text.
var (
	usagePattern = regexp.MustCompile(`^[ \t]*(?i:usage):[ \t]+([A-Za-z0-9][-\w]*(?:[ \t]+[A-Za-z0-9][-\w]*)*)(.*)$`)

	optionCombinedPattern = regexp.MustCompile(`^[ \t]+-([A-Za-z0-9]),[ \t]*--([A-Za-z][-\w]*)(?:[ \t]+|:)<([a-z][a-z0-9_-]*)>(?:[ \t]+\S.*)?[ \t]*$`)
	optionSinglePattern   = regexp.MustCompile(`^[ \t]+(?:-([A-Za-z0-9])|--([A-Za-z][-\w]*))(?:[ \t]+|:)<([a-z][a-z0-9_-]*)>(?:[ \t]+\S.*)?[ \t]*$`)
	switchCombinedPattern = regexp.MustCompile(`^[ \t]+-([A-Za-z0-9]),[ \t]*--([A-Za-z][-\w]*)(?:[ \t]+\S.*)?[ \t]*$`)
	switchSinglePattern   = regexp.MustCompile(`^[ \t]+(?:-([A-Za-z0-9])|--([A-Za-z][-\w]*))(?:[ \t]+\S.*)?[ \t]*$`)

	separatorPattern  = regexp.MustCompile(`^[ \t]*#`)
	positionalPattern = regexp.MustCompile(`\[<([a-z][a-z0-9_-]*)>(\.\.\.)?]|<([a-z][a-z0-9_-]*)>(\.\.\.)?`)
)

type lineClass int

const (
	lineText lineClass = iota
	lineSeparator
	lineUsage
	lineOption
	lineSwitch
)

// lineInfo carries a line's classification plus its captured groups. For
// lineUsage, name holds the whitespace-normalized command path and rest the
// unparsed remainder of the line. For lineOption/lineSwitch, short and long
// hold the captured flag spellings (either may be empty, never both) and arg
// holds the option's value name.
type lineInfo struct {
	class lineClass
	name  string
	rest  string
	short string
	long  string
	arg   string
}

// classifyLine classifies a single line of help text (newline already
// stripped). Pure function, no state.
func classifyLine(line string) lineInfo {
	if separatorPattern.MatchString(line) {
		return lineInfo{class: lineSeparator}
	}
	if m := usagePattern.FindStringSubmatch(line); m != nil {
		return lineInfo{
			class: lineUsage,
			name:  strings.Join(strings.Fields(m[1]), " "),
			rest:  m[2],
		}
	}
	if m := optionCombinedPattern.FindStringSubmatch(line); m != nil {
		return lineInfo{class: lineOption, short: m[1], long: m[2], arg: m[3]}
	}
	if m := optionSinglePattern.FindStringSubmatch(line); m != nil {
		return lineInfo{class: lineOption, short: m[1], long: m[2], arg: m[3]}
	}
	if m := switchCombinedPattern.FindStringSubmatch(line); m != nil {
		return lineInfo{class: lineSwitch, short: m[1], long: m[2]}
	}
	if m := switchSinglePattern.FindStringSubmatch(line); m != nil {
		return lineInfo{class: lineSwitch, short: m[1], long: m[2]}
	}
	return lineInfo{class: lineText}
}

// parsePositionals extracts the bracketed positional-argument declarations
// from a usage line's trailing remainder, in left-to-right order.
func parsePositionals(rest string) []PositionalArg {
	var decls []PositionalArg
	for _, m := range positionalPattern.FindAllStringSubmatch(rest, -1) {
		switch {
		case m[1] != "" && m[2] != "":
			decls = append(decls, PositionalArg{Name: m[1], Kind: OptionalVariadic})
		case m[1] != "":
			decls = append(decls, PositionalArg{Name: m[1], Kind: OptionalSingle})
		case m[4] != "":
			decls = append(decls, PositionalArg{Name: m[3], Kind: RequiredVariadic})
		default:
			decls = append(decls, PositionalArg{Name: m[3], Kind: RequiredSingle})
		}
	}
	return decls
}

// spelling returns the flag spelling a diagnostic should name: the long form
// when declared, the short letter otherwise.
func (li lineInfo) spelling() string {
	if li.long != "" {
		return li.long
	}
	return li.short
}
