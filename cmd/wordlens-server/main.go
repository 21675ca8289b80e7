package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/at-ishikawa/wordlens/internal/assets"
	"github.com/at-ishikawa/wordlens/internal/bootstrap"
	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/dictionary/freedict"
	"github.com/at-ishikawa/wordlens/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var debugMode bool

	command := &cobra.Command{
		Use:           "wordlens-server",
		Short:         "Serve the lookup page over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)

			if configFile == "" {
				configFile = os.Getenv("WORDLENS_CONFIG")
			}
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
	command.Flags().StringVar(&configFile, "config", "", "config file path. Defaults to $WORDLENS_CONFIG")
	command.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	return command
}

func run(ctx context.Context, cfg *config.Config) error {
	handler, err := newHandler(cfg)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort("", strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	app := bootstrap.New()
	app.OnShutdown("http server", httpServer.Shutdown)
	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", slog.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe > %w", err)
		}
		return nil
	})
}

func newHandler(cfg *config.Config) (http.Handler, error) {
	page, err := assets.ParsePageTemplate(cfg.Templates.PageTemplate)
	if err != nil {
		return nil, fmt.Errorf("assets.ParsePageTemplate() > %w", err)
	}
	reader := freedict.NewClient(
		cfg.Dictionaries.FreeDictionary.BaseURL,
		cfg.Dictionaries.FreeDictionary.Timeout,
	)

	mux := http.NewServeMux()
	server.NewLookupHandler(reader, page).Register(mux)
	return server.CORS(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(mux, &http2.Server{})), nil
}

func loadConfig(configFile string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
