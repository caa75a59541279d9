//go:build windows

package fig

// EOL is the line terminator written around ignore-file entries.
const EOL = "\r\n"
