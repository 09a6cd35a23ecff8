package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/germanamz/minutes/pkg/apierror"
	"github.com/germanamz/minutes/pkg/engine"
	"github.com/germanamz/minutes/pkg/logging"
)

// options holds the parsed command line.
type options struct {
	providerID  string
	credential  string
	notesPath   string
	format      string
	configPath  string
	envFile     string
	list        bool
	interactive bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minutes [flags]\n\nSummarize meeting notes with a hosted LLM.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	var opts options
	flag.StringVar(&opts.providerID, "provider", "", "provider id (see -list); defaults to the configured or recommended provider")
	flag.StringVar(&opts.credential, "key", "", "API key for the provider (default: config or MINUTES_API_KEY)")
	flag.StringVar(&opts.notesPath, "notes", "", `meeting notes file, or "-" for stdin`)
	flag.StringVar(&opts.format, "format", formatMarkdown, "output format: markdown or json")
	flag.StringVar(&opts.configPath, "config", "", "path to configuration file (default: MINUTES_CONFIG or minutes.yaml)")
	flag.StringVar(&opts.envFile, "env", ".env", "path to .env file (ignored if missing)")
	flag.BoolVar(&opts.list, "list", false, "list available providers and exit")
	flag.BoolVar(&opts.interactive, "i", false, "pick provider, key, and notes interactively")
	flag.Parse()

	if err := loadDotEnv(opts.envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render("error: "+userMessage(err)))
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.format != formatMarkdown && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (use %s or %s)", opts.format, formatMarkdown, formatJSON)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg, engine.WithLogger(newLogger(cfg)))
	if err != nil {
		return err
	}

	if opts.list {
		return writeProviderList(os.Stdout, eng.Catalog().All())
	}

	rc, err := resolveRequest(opts, cfg, eng)
	if err != nil {
		return err
	}

	sess := eng.NewSession()

	var out engine.Outcome
	if isTerminal(os.Stderr) {
		out, err = runWithSpinner(ctx, sess, eng.Events(), rc)
	} else {
		out, err = sess.Summarize(ctx, rc)
	}
	if err != nil {
		return err
	}

	if err := writeSummary(os.Stdout, out.Summary, opts.format, isTerminal(os.Stdout)); err != nil {
		return err
	}

	if isTerminal(os.Stderr) {
		fmt.Fprintln(os.Stderr, dimStyle.Render(usageLine(out, sess.Usage())))
	}

	return nil
}

// resolveRequest gathers provider, credential, and notes from flags, config,
// and environment, falling back to the interactive form when asked to or
// when something is missing on a terminal.
func resolveRequest(opts options, cfg engine.Config, eng *engine.Engine) (engine.RequestContext, error) {
	in := formInput{
		providerID: cfg.ProviderID(opts.providerID, eng.Catalog()),
	}
	in.credential = opts.credential
	if in.credential == "" {
		in.credential = cfg.Credential(in.providerID)
	}

	if opts.notesPath != "" {
		notes, err := readNotes(opts.notesPath, os.Stdin)
		if err != nil {
			return engine.RequestContext{}, err
		}
		in.notes = notes
	}

	missing := in.notes == "" || in.credential == ""
	if opts.interactive || (missing && isTerminal(os.Stdin)) {
		if err := runForm(eng.Catalog(), cfg, &in); err != nil {
			return engine.RequestContext{}, err
		}
	}

	return engine.RequestContext{
		Notes:      in.notes,
		ProviderID: in.providerID,
		Credential: in.credential,
	}, nil
}

// loadConfig reads the config file when one is found and overlays MINUTES_*
// environment variables.
func loadConfig(explicit string) (engine.Config, error) {
	var cfg engine.Config

	if path := resolveConfigPath(explicit); path != "" {
		loaded, err := engine.LoadConfig(path)
		if err != nil {
			return engine.Config{}, err
		}
		cfg = loaded
	}

	return engine.ApplyEnv(cfg)
}

// resolveConfigPath returns the config file to use. Priority:
// 1. Explicit -config flag
// 2. MINUTES_CONFIG
// 3. minutes.yaml (if it exists)
// An empty result means no config file.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if p := os.Getenv("MINUTES_CONFIG"); p != "" {
		return p
	}

	if _, err := os.Stat("minutes.yaml"); err == nil {
		return "minutes.yaml"
	}

	return ""
}

// newLogger logs to stderr only when a level is configured.
func newLogger(cfg engine.Config) *slog.Logger {
	if cfg.LogLevel == "" {
		return logging.Discard()
	}
	return logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}

// readNotes reads notes from path, or from stdin when path is "-".
func readNotes(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read notes: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is a user-provided CLI argument
	if err != nil {
		return "", fmt.Errorf("read notes: %w", err)
	}

	return string(data), nil
}

// userMessage returns the display text for err.
func userMessage(err error) string {
	var ae *apierror.Error
	if errors.As(err, &ae) {
		return ae.UserMessage()
	}
	return err.Error()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
