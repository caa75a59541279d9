// Package logging builds the log/slog logger used by the fig command.
//
// Every record carries heading=fig. Levels are debug, info, warn, error and
// silent; formats are text (default) and json.
//
//	logger := logging.New("info", "text", os.Stderr)
//	logger.Info("Creating fig.json")
//
// Never log values read from a fig file, only key names.
package logging
