package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gubarz/deckmd/internal/config"
	"github.com/gubarz/deckmd/internal/logging"
	"github.com/gubarz/deckmd/internal/parser"
	"github.com/gubarz/deckmd/internal/ui"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ErrNoInput is returned when no file is given and stdin is a terminal
var ErrNoInput = errors.New("no input file given and stdin is a terminal")

// stdinIsTerminal reports whether stdin is attached to a terminal
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

var rootCmd = &cobra.Command{
	Use:   "deckmd [file]",
	Short: "Markdown slide decks in the terminal",
	Long: `Present a Markdown file as a slide deck in the terminal.

Slides are separated by a horizontal rule (---) preceded by a blank line.
Leading lines starting with % form the deck header (title, author, date).
Reads from stdin when no file is given and input is piped.`,
	Args:             cobra.MaximumNArgs(1),
	PersistentPreRun: applyFlags,
	RunE:             runPresent,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	defaults := parser.DefaultOptions()
	rootCmd.PersistentFlags().Int("tab-width", defaults.TabWidth, "Spaces a tab expands to")
	rootCmd.PersistentFlags().Int("code-indent", defaults.CodeIndent, "Indentation that makes a line code")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().CountP("debug", "d", "Print deck structure to stderr (repeat for more detail)")
	rootCmd.Flags().BoolP("benchmark", "b", false, "Benchmark load time and exit")
	rootCmd.Flags().Bool("no-alt-screen", false, "Render inline instead of on the alternate screen")
}

func initConfig() {
	if err := config.Init(); err != nil {
		logging.Default().Warn("error loading config", logging.FieldError, err)
	}
}

// applyFlags lets explicitly set flags override config values
func applyFlags(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()

	if flags.Changed("tab-width") {
		v, _ := flags.GetInt("tab-width")
		config.SetTabWidth(v)
	}
	if flags.Changed("code-indent") {
		v, _ := flags.GetInt("code-indent")
		config.SetCodeIndent(v)
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		config.SetLogLevel(v)
	}
	if noAlt, _ := flags.GetBool("no-alt-screen"); noAlt {
		config.SetAltScreen(false)
	}

	logging.SetLevel(config.GetLogLevel())
	logging.FromContext(cmd.Context()).Debug("config",
		logging.FieldPath, config.ConfigFile(),
		logging.FieldTabWidth, config.GetTabWidth(),
		logging.FieldCodeIndent, config.GetCodeIndent(),
	)
}

// openInput opens the named file, or stdin when no file is given
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("open input: %w", err)
		}
		return f, args[0], nil
	}

	if stdinIsTerminal() {
		return nil, "", ErrNoInput
	}
	return io.NopCloser(os.Stdin), "stdin", nil
}

// loadDeck reads and parses the input named by args.
// Read failures are fatal.
func loadDeck(ctx context.Context, args []string) (*parser.Deck, error) {
	logger := logging.FromContext(ctx)

	in, name, err := openInput(args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	start := time.Now()
	deck, err := parser.Load(in, config.ParserOptions())
	if errors.Is(err, parser.ErrRead) {
		logger.Fatal("cannot read input", logging.FieldInput, name, logging.FieldError, err)
	}
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	logger.Debug("deck loaded",
		logging.FieldInput, name,
		logging.FieldTitle, deck.Title(),
		logging.FieldHeaders, deck.HeaderLen(),
		logging.FieldSlides, deck.Len(),
		logging.FieldLines, lineCount(deck),
		logging.FieldElapsed, time.Since(start),
	)
	return deck, nil
}

func runPresent(cmd *cobra.Command, args []string) error {
	start := time.Now()
	deck, err := loadDeck(cmd.Context(), args)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if level, _ := cmd.Flags().GetCount("debug"); level > 0 {
		if err := parser.WriteDebug(cmd.ErrOrStderr(), deck, level); err != nil {
			return fmt.Errorf("write debug: %w", err)
		}
	}

	if benchmark, _ := cmd.Flags().GetBool("benchmark"); benchmark {
		writeBenchmark(cmd.OutOrStdout(), deck, elapsed)
		return nil
	}

	return ui.Run(deck, ui.Options{
		CodeIndent: config.ParserOptions().CodeIndent,
		AltScreen:  config.GetAltScreen(),
	})
}

// writeBenchmark reports parse time and memory use
func writeBenchmark(w io.Writer, deck *parser.Deck, elapsed time.Duration) {
	// Force GC and get memory stats
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Fprintf(w, "Loaded %d slides (%d lines) in %v\n", deck.Len(), lineCount(deck), elapsed)
	fmt.Fprintf(w, "Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
}

func lineCount(deck *parser.Deck) int {
	n := 0
	for _, slide := range deck.Slides {
		n += slide.Len()
	}
	return n
}

func runVersion(cmd *cobra.Command, _ []string) {
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")
	logger.Info("deckmd",
		logging.FieldVersion, version,
		logging.FieldCommit, commit,
		logging.FieldBuilt, date,
	)
}

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.Default()
	ctx := logging.WithLogger(context.Background(), logger)

	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
