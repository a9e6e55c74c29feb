package usage

import (
	"fmt"
	"time"

	"github.com/cmdtext/usage/convert"
	"github.com/cmdtext/usage/types/orderedmap"
)

type valueKind int

const (
	valueString valueKind = iota
	valueBool
	valueList
)

type resultValue struct {
	kind    valueKind
	str     string
	boolean bool
	list    []string
}

// Result is the immutable outcome of one resolve-and-bind run: bound result
// keys in binding order, the resolved command and the full model for
// introspection (e.g. looking up another command's help text). A Result is
// never mutated after being returned.
type Result struct {
	model   *Model
	command *Command
	values  *orderedmap.OrderedMap[string, resultValue]
}

func newResult(model *Model, command *Command, values *orderedmap.OrderedMap[string, resultValue]) *Result {
	return &Result{model: model, command: command, values: values}
}

// Command returns the resolved command definition
func (r *Result) Command() *Command {
	return r.command
}

// Model returns the full command model the result was produced from
func (r *Result) Model() *Model {
	return r.model
}

// Has reports whether key is present in the result. Declared switches are
// always present with a definite boolean; an optional positional dropped by
// the reduce algorithm is absent. Presence is distinct from truthiness - use
// IsTrue for the latter.
func (r *Result) Has(key string) bool {
	return r.values.Has(key)
}

// Get returns the string bound to key. ok is false when the key is absent or
// does not hold a single string value.
func (r *Result) Get(key string) (value string, ok bool) {
	v, found := r.values.Get(key)
	if !found || v.kind != valueString {
		return "", false
	}
	return v.str, true
}

// GetList returns the tokens bound to a variadic positional slot. The
// returned slice is a copy; mutating it does not affect the Result.
func (r *Result) GetList(key string) (values []string, ok bool) {
	v, found := r.values.Get(key)
	if !found || v.kind != valueList {
		return nil, false
	}
	return append([]string(nil), v.list...), true
}

// IsTrue reports whether key holds a true boolean value
func (r *Result) IsTrue(key string) bool {
	v, found := r.values.Get(key)
	return found && v.kind == valueBool && v.boolean
}

// Keys returns every bound result key in binding order
func (r *Result) Keys() []string {
	return r.values.Keys()
}

// Count returns the number of bound result keys
func (r *Result) Count() int {
	return r.values.Count()
}

// Convert coerces the string bound to key through the conversion function
// registered under tag. The conversion runs lazily against the stored value
// and never mutates it; failures come back as a ParseError scoped to the
// result's command and naming the argument.
func (r *Result) Convert(key, tag string) (any, error) {
	raw, ok := r.Get(key)
	if !ok {
		return nil, parseErr(r.command.fullName, ErrArgumentMissing, "<"+key+">")
	}
	fn, ok := convert.Lookup(tag)
	if !ok {
		return nil, parseErr(r.command.fullName, ErrUnknownConverter, tag)
	}
	return fn(raw, func(format string, args ...any) error {
		return &ParseError{
			Command: r.command.fullName,
			Err:     fmt.Errorf("%w <%s> - %s", ErrConversion, key, fmt.Sprintf(format, args...)),
		}
	})
}

// Int converts the value bound to key via the "int" converter
func (r *Result) Int(key string) (int64, error) {
	v, err := r.Convert(key, "int")
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// Float converts the value bound to key via the "float" converter
func (r *Result) Float(key string) (float64, error) {
	v, err := r.Convert(key, "float")
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Date converts the value bound to key via the "date" converter
func (r *Result) Date(key string) (time.Time, error) {
	v, err := r.Convert(key, "date")
	if err != nil {
		return time.Time{}, err
	}
	return v.(time.Time), nil
}
