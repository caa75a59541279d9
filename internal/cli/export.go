package cli

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

var shellName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// writeExports prints one `export KEY='value'` line per entry, sorted by key.
// Keys that are not valid shell variable names are skipped with a warning.
func writeExports(w io.Writer, entries map[string]string, logger *slog.Logger) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !shellName.MatchString(k) {
			logger.Warn("Skipping " + k + ": not a valid shell variable name")
			continue
		}
		fmt.Fprintf(w, "export %s=%s\n", k, shellQuote(entries[k]))
	}
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
