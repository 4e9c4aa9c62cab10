package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/gemini"
	"github.com/fwojciec/pagesift/goquery"
	sifthttp "github.com/fwojciec/pagesift/http"
	"github.com/fwojciec/pagesift/openai"
	"github.com/fwojciec/pagesift/rod"
	siftslog "github.com/fwojciec/pagesift/slog"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// FetcherFunc builds the page fetcher from parsed flags.
type FetcherFunc func(cli *CLI) (pagesift.Fetcher, error)

// ModelFunc builds the language model from parsed flags.
type ModelFunc func(ctx context.Context, cli *CLI) (pagesift.Model, error)

// Main represents the program.
type Main struct {
	// Stdin is read by the session command and by parse --file -.
	Stdin io.Reader

	// ConfigPaths are YAML files loaded before flags are applied.
	ConfigPaths []string

	// Collaborator constructors, replaceable for end-to-end testing.
	NewFetcher FetcherFunc
	NewModel   ModelFunc
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:       os.Stdin,
		ConfigPaths: defaultConfigPaths(),
		NewFetcher:  newFetcher,
		NewModel:    newModel,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Description("Scrape a web page and extract what you describe with a language model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLLoader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := NewLogger(stderr, cli.LogLevel)
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cmd := kongCtx.Command()
	needsFetcher := !strings.HasPrefix(cmd, "parse") || cli.Parse.URL != ""
	needsModel := !strings.HasPrefix(cmd, "scrape")

	if needsFetcher {
		fetcher, err := m.NewFetcher(cli)
		if err != nil {
			if cli.Fetcher == "browser" {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --fetcher=http for static pages")
			}
			return fmt.Errorf("failed to start fetcher: %w", err)
		}
		defer fetcher.Close()

		deps.Scraper = &pagesift.Scraper{
			Fetcher:   siftslog.NewLoggingFetcher(fetcher, logger),
			Extractor: goquery.NewExtractor(),
		}
	}

	if needsModel {
		model, err := m.NewModel(ctx, cli)
		if err != nil {
			return err
		}

		deps.Parser = &pagesift.Parser{
			Aggregator: &pagesift.Aggregator{
				Model:       siftslog.NewLoggingModel(model, logger),
				Concurrency: cli.Concurrency,
				Progress: func(p pagesift.Progress) {
					logger.Info("parsed segment", "completed", p.Completed, "total", p.Total)
				},
			},
			MaxLength: cli.MaxLength,
		}
	}

	return kongCtx.Run(deps)
}

func newFetcher(cli *CLI) (pagesift.Fetcher, error) {
	if cli.Fetcher == "http" {
		return sifthttp.NewFetcher(sifthttp.WithTimeout(cli.Timeout)), nil
	}

	return rod.NewFetcher(
		rod.WithFetchTimeout(cli.Timeout),
		rod.WithSettleDelay(cli.SettleDelay),
		rod.WithManagerOptions(
			rod.WithBrowserBin(cli.BrowserBin),
			rod.WithHeadless(!cli.Headful),
		),
	)
}

func newModel(ctx context.Context, cli *CLI) (pagesift.Model, error) {
	switch cli.Provider {
	case "gemini":
		if cli.GeminiAPIKey == "" {
			return nil, pagesift.Errorf(pagesift.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewModel(client, cli.Model), nil

	case "openai":
		if cli.OpenAIAPIKey == "" {
			return nil, pagesift.Errorf(pagesift.EINVALID, "OPENAI_API_KEY not set")
		}
		model := cli.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		return openai.NewModel(openai.Config{
			BaseURL: cli.BaseURL,
			APIKey:  cli.OpenAIAPIKey,
			Model:   model,
		})

	default:
		baseURL := cli.BaseURL
		if baseURL == "" {
			baseURL = openai.DefaultOllamaBaseURL
		}
		model := cli.Model
		if model == "" {
			model = openai.DefaultOllamaModel
		}
		return openai.NewModel(openai.Config{
			BaseURL: baseURL,
			APIKey:  "ollama",
			Model:   model,
		})
	}
}

const defaultOpenAIModel = "gpt-4o-mini"
