package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dshills/fig"
	"github.com/dshills/fig/internal/config"
	"github.com/dshills/fig/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "1.0.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

type rootFlags struct {
	setup  bool
	parse  bool
	export bool

	figFile       string
	figContent    string
	gitignorePath string
	gitignoreSkip bool
	logLevel      string
	logFormat     string
}

// Run executes the root command against os.Args and returns an exit code.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	exitCode := ExitSuccess
	cmd := newRootCmd(stdout, stderr, &exitCode)
	cmd.SetArgs(normalizeArgs(args))

	if err := cmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

func newRootCmd(stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "fig",
		Short: "Manage sensitive project configuration",
		Long: "fig manages your project's sensitive configuration (the settings you do not want to upload to git).\n\n" +
			"--setup creates the fig file and adds it to your .gitignore.\n" +
			"--parse reads the fig file and adds its entries to the environment.",
		Example: "  fig --setup\n" +
			"  fig -s -ff secrets.json -gp .gitignore\n" +
			"  eval \"$(fig -p -e --log-level silent)\"",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f, stdout, stderr, exitCode)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("fig version {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&f.setup, "setup", "s", false, "Create the fig file and add it to the ignore file")
	flags.BoolVarP(&f.parse, "parse", "p", false, "Parse the fig file and add its entries to the environment")
	flags.BoolVarP(&f.export, "export", "e", false, "With --parse, print the entries as shell export lines")
	flags.StringVar(&f.figFile, "fig-file", fig.DefaultFilePath, "File where your sensitive configuration is stored (alias -ff)")
	flags.StringVar(&f.figContent, "fig-content", fig.DefaultContent, "Initial contents of a new fig file (alias -fc)")
	flags.BoolVar(&f.gitignoreSkip, "gitignore-skip", false, "Skip updating the ignore file (alias -gs)")
	flags.StringVar(&f.gitignorePath, "gitignore-path", fig.DefaultIgnorePath, "Path of the ignore file (alias -gp)")
	flags.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error, silent)")
	flags.StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")

	return cmd
}

func runRoot(cmd *cobra.Command, f rootFlags, stdout, stderr io.Writer, exitCode *int) error {
	cfg, err := config.Load(collectOverrides(cmd.Flags(), f))
	if err != nil {
		return err
	}
	if f.export && !f.parse {
		return errors.New("--export requires --parse")
	}

	if !logging.IsSilent(cfg.LogLevel) {
		printBanner(stderr)
	}
	if !f.setup && !f.parse {
		return cmd.Help()
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

	if f.setup {
		if err := fig.Setup(cfg.FigFile, cfg.FigContent, cfg.GitignorePath, cfg.GitignoreSkip, fig.WithLogger(logger)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			*exitCode = ExitRuntimeError
			return nil
		}
	}

	if !f.parse {
		return nil
	}

	if f.export {
		entries, err := fig.Read(cfg.FigFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			*exitCode = ExitRuntimeError
			return nil
		}
		writeExports(stdout, entries, logger)
		return nil
	}

	// Load logs its own failure; only the exit code is set here.
	if err := <-fig.Parse(cfg.FigFile, fig.WithLogger(logger)); err != nil {
		*exitCode = ExitRuntimeError
	}
	return nil
}

// collectOverrides returns only the flags the user set explicitly, so that
// FIG_* environment variables keep precedence over flag defaults.
func collectOverrides(flags *pflag.FlagSet, f rootFlags) map[string]string {
	overrides := map[string]string{}
	if flags.Changed("fig-file") {
		overrides[config.KeyFigFile] = f.figFile
	}
	if flags.Changed("fig-content") {
		overrides[config.KeyFigContent] = f.figContent
	}
	if flags.Changed("gitignore-path") {
		overrides[config.KeyGitignorePath] = f.gitignorePath
	}
	if flags.Changed("gitignore-skip") {
		overrides[config.KeyGitignoreSkip] = strconv.FormatBool(f.gitignoreSkip)
	}
	if flags.Changed("log-level") {
		overrides[config.KeyLogLevel] = f.logLevel
	}
	if flags.Changed("log-format") {
		overrides[config.KeyLogFormat] = f.logFormat
	}
	return overrides
}
