// Package flagx lets several flag sets share os.Args: each parser keeps only
// the flags it owns, and the config file location is resolved before any of
// them run.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// configFlags are the spellings that name a config file.
var configFlags = []string{"-c", "-config"}

// canonical maps "--name" to "-name"; the flag package accepts both.
func canonical(name string) string {
	if strings.HasPrefix(name, "--") {
		return name[1:]
	}
	return name
}

// FilterArgs returns the arguments that belong to allowedFlags, in their
// original order. A flag may be written with one or two dashes, with its
// value joined by "=" or as the following argument. An argument that starts
// with "-" is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[canonical(f)] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, joined := strings.Cut(arg, "=")
		if !allowed[canonical(name)] {
			continue
		}

		filtered = append(filtered, arg)
		if !joined && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the config file named by -c/-config (JSON or YAML).
// When neither flag is given it falls back to the envKey variable, if
// envKey is not empty. The last occurrence of the flag wins.
func ConfigPath(envKey string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], configFlags))

	if path == "" && envKey != "" {
		path = os.Getenv(envKey)
	}
	return path
}
