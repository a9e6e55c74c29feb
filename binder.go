package usage

import (
	"strings"

	"github.com/cmdtext/usage/parse"
	"github.com/cmdtext/usage/types/orderedmap"
	"github.com/ef-ds/deque"
)

// inline switch values: anything else evaluates to false
var booleanWords = map[string]bool{
	"y":    true,
	"yes":  true,
	"t":    true,
	"true": true,
	"on":   true,
}

// binder walks the tokens left after command resolution and produces the
// values of one Result. Options and switches bind while scanning; positional
// tokens queue up and bind once option processing ends.
type binder struct {
	cmd    *Command
	values *orderedmap.OrderedMap[string, resultValue]
	queue  deque.Deque
}

// bindCommand runs the binder over the remaining token list and freezes the
// outcome into a Result.
func bindCommand(model *Model, cmd *Command, args []string) (*Result, error) {
	b := &binder{
		cmd:    cmd,
		values: orderedmap.NewOrderedMap[string, resultValue](),
	}
	if err := b.scanOptions(parse.NewState(args)); err != nil {
		return nil, err
	}
	if !b.shortCircuits() {
		if err := b.bindPositionals(); err != nil {
			return nil, err
		}
	}
	b.defaultSwitches()
	return newResult(model, cmd, b.values), nil
}

// scanOptions dispatches each token, in order: the -- terminator, a long
// option, an inline name:value / name=value pair, a short-option cluster, or
// a bare positional.
func (b *binder) scanOptions(st *parse.State) error {
	for st.Advance() {
		token := st.CurrentArg()
		var err error
		switch {
		case token == "--":
			// everything after the terminator is positional input verbatim
			for st.Advance() {
				b.queue.PushBack(st.CurrentArg())
			}
		case strings.HasPrefix(token, "--"):
			body := token[2:]
			if i := strings.IndexAny(body, ":="); i >= 0 {
				err = b.bindInline("--"+body[:i], body[:i], body[i+1:])
			} else {
				err = b.bindLong(body, st)
			}
		case strings.HasPrefix(token, "-") && len(token) > 1:
			body := token[1:]
			if i := strings.IndexAny(body, ":="); i >= 0 {
				err = b.bindInline("-"+body[:i], body[:i], body[i+1:])
			} else {
				err = b.bindCluster(body, st)
			}
		default:
			b.queue.PushBack(token)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// bindLong handles --name with no inline value. A switch turns true; an
// option consumes the next token as its value.
func (b *binder) bindLong(name string, st *parse.State) error {
	target, ok := b.cmd.lookupFlag(name)
	if !ok {
		return parseErr(b.cmd.fullName, ErrUnknownOption, "--"+name)
	}
	if target.isSwitch {
		b.setBool(target.key, true)
		return nil
	}
	return b.consumeValue(target, "--"+name, st)
}

// bindInline handles -name:value, -name=value and their double-dash forms.
// The spelling look-up ignores the dash count.
func (b *binder) bindInline(display, name, value string) error {
	target, ok := b.cmd.lookupFlag(name)
	if !ok {
		return parseErr(b.cmd.fullName, ErrUnknownOption, display)
	}
	if target.isSwitch {
		b.setBool(target.key, booleanWords[strings.ToLower(value)])
	} else {
		b.setString(target.key, value)
	}
	return nil
}

// bindCluster handles -abc: each letter dispatches as an independent short
// flag. A value-bearing letter consumes the next whole token, so in practice
// only the cluster's last letter can name an option.
func (b *binder) bindCluster(letters string, st *parse.State) error {
	for _, c := range letters {
		target, ok := b.cmd.lookupFlag(string(c))
		if !ok {
			return parseErr(b.cmd.fullName, ErrUnknownOption, "-"+string(c))
		}
		if target.isSwitch {
			b.setBool(target.key, true)
			continue
		}
		if err := b.consumeValue(target, "-"+string(c), st); err != nil {
			return err
		}
	}
	return nil
}

// consumeValue takes the token following an option as its value. A missing
// or option-looking follower is an error naming the option spelling.
func (b *binder) consumeValue(target *flagTarget, display string, st *parse.State) error {
	if st.Pos()+1 >= st.Len() || looksLikeOption(st.Peek()) {
		return parseErr(b.cmd.fullName, ErrArgumentMissing, display)
	}
	st.Advance()
	b.setString(target.key, st.CurrentArg())
	return nil
}

// shortCircuits reports whether positional processing is skipped entirely:
// only the main command honors --help / --version in place of its required
// arguments. Sub-commands never short-circuit.
func (b *binder) shortCircuits() bool {
	return b.cmd.IsMain() && (b.isTrue("help") || b.isTrue("version"))
}

// bindPositionals applies the reduce relaxation, then binds the surviving
// slots left to right against the queued positional tokens.
func (b *binder) bindPositionals() error {
	slots := b.cmd.PositionalArgs()

	// reduce: while tokens are too few, drop the right-most optional slot -
	// it simply receives no value. Earlier optionals survive longest.
	for b.queue.Len() < len(slots) {
		dropped := false
		for i := len(slots) - 1; i >= 0; i-- {
			if slots[i].Kind.Optional() {
				slots = append(slots[:i], slots[i+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			// every slot left is required; the first one that would
			// receive no token is the left-most unsatisfied slot
			return parseErr(b.cmd.fullName, ErrArgumentMissing, "<"+slots[b.queue.Len()].Name+">")
		}
	}

	for _, slot := range slots {
		switch slot.Kind {
		case RequiredSingle:
			v, ok := b.queue.PopFront()
			if !ok {
				return parseErr(b.cmd.fullName, ErrArgumentMissing, "<"+slot.Name+">")
			}
			b.setString(slot.Name, v.(string))
		case OptionalSingle:
			if v, ok := b.queue.PopFront(); ok {
				b.setString(slot.Name, v.(string))
			}
		case RequiredVariadic:
			if b.queue.Len() == 0 {
				return parseErr(b.cmd.fullName, ErrArgumentMissing, "<"+slot.Name+">")
			}
			b.setList(slot.Name, b.drain())
		case OptionalVariadic:
			if b.queue.Len() > 0 {
				b.setList(slot.Name, b.drain())
			}
		}
	}
	if b.queue.Len() > 0 {
		return parseErr(b.cmd.fullName, ErrTooManyArguments, "")
	}
	return nil
}

// defaultSwitches pins every declared switch the user did not set to an
// explicit false. Switches are always present in the result.
func (b *binder) defaultSwitches() {
	for _, key := range b.cmd.Switches() {
		if !b.values.Has(key) {
			b.setBool(key, false)
		}
	}
}

func (b *binder) drain() []string {
	all := make([]string, 0, b.queue.Len())
	for {
		v, ok := b.queue.PopFront()
		if !ok {
			return all
		}
		all = append(all, v.(string))
	}
}

func (b *binder) setString(key, value string) {
	b.values.Set(key, resultValue{kind: valueString, str: value})
}

func (b *binder) setList(key string, values []string) {
	b.values.Set(key, resultValue{kind: valueList, list: values})
}

func (b *binder) setBool(key string, value bool) {
	b.values.Set(key, resultValue{kind: valueBool, boolean: value})
}

func (b *binder) isTrue(key string) bool {
	v, ok := b.values.Get(key)
	return ok && v.kind == valueBool && v.boolean
}
