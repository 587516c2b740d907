package config

import (
	"os"
	"strconv"
	"strings"
)

// Arg is a parsed "--key" token. A bare "--key" has Present set and no
// value; "--key=value" carries the value.
type Arg struct {
	Value   string
	Present bool
}

// IsValue reports whether the argument carries a string value
func (a Arg) IsValue() bool {
	return !a.Present
}

// Args maps option keys to the last token seen for them
type Args map[string]Arg

// LookupEnv has the signature of os.LookupEnv
type LookupEnv func(key string) (string, bool)

// OSEnv reads the process environment
var OSEnv LookupEnv = os.LookupEnv

// ParseArgs collects "--key=value" and bare "--key" tokens. Anything else is
// ignored, and so are keys nobody asks for.
func ParseArgs(args []string) Args {
	parsed := Args{}
	for _, a := range args {
		if !strings.HasPrefix(a, "--") {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimPrefix(a, "--"), "=")
		if ok {
			parsed[key] = Arg{Value: value}
		} else {
			parsed[key] = Arg{Present: true}
		}
	}
	return parsed
}

// Setting describes where a single option may come from
type Setting struct {
	Flag    string
	EnvVar  string
	Default string
}

// Resolve returns the first non-empty source: "--flag=value", the
// environment variable, then the default. A bare "--flag" is skipped.
func (a Args) Resolve(s Setting, env LookupEnv) string {
	if arg, ok := a[s.Flag]; ok && arg.IsValue() && arg.Value != "" {
		return arg.Value
	}

	if env != nil && s.EnvVar != "" {
		if v, ok := env(s.EnvVar); ok && v != "" {
			return v
		}
	}

	return s.Default
}

// Switch resolves a boolean option. A bare "--flag" turns it on; a value or
// environment variable is parsed with strconv.ParseBool and unparsable input
// counts as off.
func (a Args) Switch(s Setting, env LookupEnv) bool {
	if arg, ok := a[s.Flag]; ok && arg.Present {
		return true
	}

	b, err := strconv.ParseBool(a.Resolve(s, env))
	return err == nil && b
}

// Has reports whether the key appeared in any form
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}
