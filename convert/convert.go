// Package convert holds the process-wide registry of type-conversion
// functions used to coerce bound string values (to int, float, date, file
// path, etc.). The core binder never converts beyond booleans; callers invoke
// a registered function lazily against a bound value.
//
// Registration is rare and lookups are frequent, so the registry is guarded
// by a read/write lock. Registration order is preserved so Names enumerates
// converters deterministically.
package convert

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/araddon/dateparse"
	wkmap "github.com/wk8/go-ordered-map"
)

// FailFunc builds the error a conversion function returns on bad input. The
// caller supplies it so the error carries the invoking command and argument
// name.
type FailFunc func(format string, args ...any) error

// Func converts a raw bound string into a typed value. On failure it returns
// the error produced by fail.
type Func func(value string, fail FailFunc) (any, error)

var (
	mu       sync.RWMutex
	registry = wkmap.New()
)

// Register stores fn under tag, replacing any previous registration
func Register(tag string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	registry.Set(tag, fn)
}

// Lookup returns the conversion function registered under tag
func Lookup(tag string) (Func, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := registry.Get(tag)
	if !ok {
		return nil, false
	}
	return v.(Func), true
}

// Names returns all registered tags in registration order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, registry.Len())
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

func init() {
	Register("int", Int)
	Register("uint", Uint)
	Register("float", Float)
	Register("bool", Bool)
	Register("date", Date)
	Register("file", File)
	Register("regexp", Regexp)
}

// Int parses a base-10 signed integer as int64
func Int(value string, fail FailFunc) (any, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fail("not a valid integer: %s", value)
	}
	return n, nil
}

// Uint parses a base-10 unsigned integer as uint64
func Uint(value string, fail FailFunc) (any, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, fail("not a valid unsigned integer: %s", value)
	}
	return n, nil
}

// Float parses a floating-point number as float64
func Float(value string, fail FailFunc) (any, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fail("not a valid number: %s", value)
	}
	return f, nil
}

// Bool parses the usual boolean words, plus y/yes/on and n/no/off
func Bool(value string, fail FailFunc) (any, error) {
	switch strings.ToLower(value) {
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fail("not a valid boolean: %s", value)
	}
	return b, nil
}

// Date parses a date/time string in any of the formats dateparse recognizes,
// returning a time.Time
func Date(value string, fail FailFunc) (any, error) {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return nil, fail("not a valid date: %s", value)
	}
	return t, nil
}

// File cleans the value as a path and requires it to name an existing file
func File(value string, fail FailFunc) (any, error) {
	path := filepath.Clean(value)
	if _, err := os.Stat(path); err != nil {
		return nil, fail("no such file: %s", value)
	}
	return path, nil
}

// Regexp compiles the value as a regular expression
func Regexp(value string, fail FailFunc) (any, error) {
	re, err := regexp.Compile(value)
	if err != nil {
		return nil, fail("not a valid regular expression: %s", value)
	}
	return re, nil
}

// Enum builds a conversion function accepting only the listed values
func Enum(allowed ...string) Func {
	return func(value string, fail FailFunc) (any, error) {
		for _, a := range allowed {
			if value == a {
				return value, nil
			}
		}
		return nil, fail("must be one of %s: %s", strings.Join(allowed, "|"), value)
	}
}
