package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/bloom"
	"github.com/fwojciec/coursecheck/csv"
	"github.com/fwojciec/coursecheck/fs"
	"github.com/fwojciec/coursecheck/gemini"
	"github.com/fwojciec/coursecheck/goquery"
	"github.com/fwojciec/coursecheck/keyword"
	"github.com/fwojciec/coursecheck/match"
	ccslog "github.com/fwojciec/coursecheck/slog"
	"github.com/fwojciec/coursecheck/sqlite"
	"github.com/fwojciec/coursecheck/tokenset"
	"github.com/fwojciec/coursecheck/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor the config file names one.
	DBPath string

	// Config file path used when --config is not given. Empty means defaults.
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursecheck"),
		kong.Description("Check which courses of one program are accepted in another."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursecheck --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}
	deps.Config = cfg

	dbPath := m.DBPath
	if cfg.DBPath != "" {
		dbPath = cfg.DBPath
	}
	if cli.DB != "" {
		dbPath = cli.DB
	}

	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set COURSECHECK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	scorer := tokenset.NewScorer()
	deps.DB = m.DB
	deps.Catalogs = ccslog.NewLoggingCatalogService(sqlite.NewCatalogService(m.DB), deps.Logger)
	deps.Parsers = map[string]coursecheck.CatalogParser{
		coursecheck.FormatCSV:  csv.NewParser(),
		coursecheck.FormatHTML: goquery.NewParser(),
	}
	deps.Open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	deps.Classifier = keyword.NewClassifier()
	deps.Matcher = match.NewMatcher(scorer)
	deps.Prefilter = bloom.NewMatcher(scorer)
	deps.Reports = fs.NewReportWriter()
	deps.Now = time.Now

	if strings.HasPrefix(kongCtx.Command(), "ask") {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		asker := gemini.NewAsker(client, deps.Catalogs, cfg.Model)
		asker.Logger = deps.Logger
		if tokens, err := gemini.NewTokenCounter(tokenizerModel); err != nil {
			deps.Logger.Warn("prompt size check disabled", "err", err)
		} else {
			asker.Tokens = tokens
			asker.MaxPromptTokens = maxPromptTokens
		}
		deps.Asker = ccslog.NewLoggingAsker(asker, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the config file named by flag, environment or Main.
func (m *Main) loadConfig(path string) (*coursecheck.Config, error) {
	if path == "" {
		path = m.ConfigPath
	}
	if path == "" {
		return coursecheck.DefaultConfig(), nil
	}
	return yaml.LoadConfig(path)
}

// tokenizerModel is used for prompt token counting. The local tokenizer
// supports fewer models than the API, so it is pinned separately.
const tokenizerModel = "gemini-2.5-flash"

// maxPromptTokens keeps catalog prompts inside the model context window.
const maxPromptTokens = 1_000_000

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "coursecheck.db"
	}
	dir := filepath.Join(home, ".coursecheck")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "coursecheck.db")
}
