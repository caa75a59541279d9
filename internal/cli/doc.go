// Package cli wires together the Cobra command for the fig binary.
//
// fig has a single root command driven by mode flags (--setup, --parse). It
// rewrites the multi-letter aliases (-ff, -fc, -gs, -gp) and -? before Cobra
// parses the arguments, resolves settings through the config package, and
// returns deterministic exit codes.
package cli
