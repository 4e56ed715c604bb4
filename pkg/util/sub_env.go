package util

import (
	"os"
	"regexp"
)

var VariableDetection = regexp.MustCompile(`(?i)\$([a-z0-9_]+)|\${([a-z0-9_]+)(([^a-z0-9_]+)(.*?))?}`)

// Lookup resolves a variable name. Unset variables return "".
type Lookup func(name string) string

// EnvLookup resolves variables from the process environment.
func EnvLookup(name string) string {
	return os.Getenv(name)
}

// MapLookup resolves variables from a fixed map.
func MapLookup(environment map[string]string) Lookup {
	return func(name string) string {
		return environment[name]
	}
}

// SubEnv performs variable substitution on a spinner message.
// Supports $VAR, or ${VAR} optionally with the -, :-, +, :+ modifiers.
// Other modifiers are ignored and the variable is substituted as is.
func SubEnv(lookup Lookup, source string) string {
	return VariableDetection.ReplaceAllStringFunc(source, func(match string) string {
		parts := VariableDetection.FindStringSubmatch(match)

		if parts[2] == "" {
			return lookup(parts[1])
		}

		value := lookup(parts[2])

		switch parts[4] {
		case "-", ":-":
			if value == "" {
				return parts[5]
			}
			return value
		case "+", ":+":
			if value != "" {
				return parts[5]
			}
			return ""
		}

		return value
	})
}
