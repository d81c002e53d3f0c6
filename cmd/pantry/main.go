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
	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/fs"
	"github.com/fwojciec/pantry/gemini"
	"github.com/fwojciec/pantry/glamour"
	"github.com/fwojciec/pantry/goquery"
	"github.com/fwojciec/pantry/htmltomarkdown"
	pantryhttp "github.com/fwojciec/pantry/http"
	"github.com/fwojciec/pantry/ingest"
	pslog "github.com/fwojciec/pantry/slog"
	"github.com/fwojciec/pantry/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Set before calling Run().
	DBPath    string
	APIKey    string
	Model     string
	SearchURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ItemService    pantry.ItemService
	ReceiptService pantry.ReceiptService
}

// NewMain returns a new instance of Main configured from the environment.
func NewMain() *Main {
	model := os.Getenv("PANTRY_MODEL")
	if model == "" {
		model = gemini.DefaultModel
	}
	searchURL := os.Getenv("PANTRY_SEARCH_URL")
	if searchURL == "" {
		searchURL = pantryhttp.DefaultSearchURL
	}
	return &Main{
		DBPath:    defaultDBPath(),
		APIKey:    apiKeyFromEnv(),
		Model:     model,
		SearchURL: searchURL,
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
		Now:    time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pantry"),
		kong.Description("Track groceries from receipt photos and cook from what you have."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pantry --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PANTRY_DB to use a different database path\n")
		fmt.Fprintf(stderr, "error: failed to open database at %q: %s\n", m.DBPath, err)
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ItemService = sqlite.NewItemService(m.DB)
	m.ReceiptService = sqlite.NewReceiptService(m.DB)
	deps.Items = m.ItemService
	deps.Receipts = m.ReceiptService

	if cmd == "recipes" && cli.Recipes.Prompt {
		tokens, err := gemini.NewTokenCounter(m.Model)
		if err != nil {
			fmt.Fprintf(stderr, "error: failed to create token counter: %s\n", err)
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		// Rendering the prompt only reads the inventory.
		deps.Prompter = gemini.NewChef(nil, m.ItemService, m.Model)
		deps.Tokens = tokens
		return kongCtx.Run(deps)
	}

	if cmd == "scan" || cmd == "recipes" || cmd == "resolve" {
		client, err := m.newClient(ctx, stderr)
		if err != nil {
			return err
		}

		// Only scan and resolve search the web.
		var resolver pantry.Resolver
		if cmd != "recipes" {
			if resolver, err = m.newResolver(client, logger); err != nil {
				fmt.Fprintf(stderr, "error: %s\n", pantry.ErrorMessage(err))
				return err
			}
		}

		switch cmd {
		case "scan":
			deps.Ingester = &ingest.Ingester{
				Scanner:  pslog.NewLoggingScanner(gemini.NewScanner(client, m.Model), logger),
				Resolver: resolver,
				Items:    m.ItemService,
				Receipts: m.ReceiptService,
				Now:      time.Now,
			}
		case "recipes":
			deps.Chef = pslog.NewLoggingChef(gemini.NewChef(client, m.ItemService, m.Model), logger)
			if cli.Recipes.Save != "" {
				deps.Writer = fs.NewRecipeWriter(cli.Recipes.Save)
			}
			if cli.Recipes.Pretty {
				renderer, err := glamour.NewRenderer("", glamour.DefaultWordWrap)
				if err != nil {
					fmt.Fprintf(stderr, "error: failed to create renderer: %s\n", err)
					return fmt.Errorf("failed to create renderer: %w", err)
				}
				deps.Renderer = renderer
			}
		case "resolve":
			deps.Resolver = resolver
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) newClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	if m.APIKey == "" {
		fmt.Fprintln(stderr, "error: GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  m.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		fmt.Fprintf(stderr, "error: failed to connect to Gemini API: %s\n", err)
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func (m *Main) newResolver(client *genai.Client, logger *slog.Logger) (pantry.Resolver, error) {
	parser, err := goquery.NewSearchParser(m.SearchURL, htmltomarkdown.NewConverter())
	if err != nil {
		return nil, pantry.Errorf(pantry.EINVALID, "invalid PANTRY_SEARCH_URL: %v", err)
	}

	searcher := &pantryhttp.Searcher{
		Fetcher:     pslog.NewLoggingFetcher(pantryhttp.NewFetcher(), logger),
		Parser:      parser,
		RateLimiter: pantryhttp.NewHostLimiter(1.0),
		BaseURL:     m.SearchURL,
		Logf: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}

	return pslog.NewLoggingResolver(
		gemini.NewResolver(client, pslog.NewLoggingSearcher(searcher, logger), m.Model),
		logger,
	), nil
}

func apiKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func defaultDBPath() string {
	if path := os.Getenv("PANTRY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pantry.db"
	}
	dir := filepath.Join(home, ".pantry")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pantry.db")
}
