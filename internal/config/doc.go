// Package config resolves the settings of the fig command.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (FIG_FILE, FIG_CONTENT, FIG_GITIGNORE_PATH,
//     FIG_GITIGNORE_SKIP, FIG_LOG_LEVEL, FIG_LOG_FORMAT)
//  3. Built-in defaults
//
// Use [Load] to obtain the merged [Config].
package config
