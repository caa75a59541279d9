package cli

import "strings"

// pflag shorthands are a single character, so the two-letter aliases are
// mapped to their long flags before parsing.
var flagAliases = map[string]string{
	"-ff": "--fig-file",
	"-fc": "--fig-content",
	"-gs": "--gitignore-skip",
	"-gp": "--gitignore-path",
	"-?":  "--help",
}

func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := flagAliases[name]; ok {
			arg = long
			if hasValue {
				arg += "=" + value
			}
		}
		out = append(out, arg)
	}
	return out
}
