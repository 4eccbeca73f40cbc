package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"

	"MediaMap/internal/config"
	"MediaMap/internal/curation"
	"MediaMap/internal/domain"
	"MediaMap/internal/infrastructure/parser"
	"MediaMap/internal/infrastructure/storage"
	"MediaMap/internal/loader"
	"MediaMap/internal/logging"
	"MediaMap/internal/metrics"
	"MediaMap/internal/report"
	"MediaMap/internal/transport/httpapi"
	"MediaMap/internal/usecase"
	"MediaMap/internal/view"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New registers every dataset loader and builds the curation pipeline.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := loader.NewRegistry()
	registry.Register(parser.NewJSONLoader())
	registry.Register(parser.NewYAMLLoader())
	registry.Register(storage.NewSQLLoader())

	source := parser.NewStrategySource(registry, cfg.Datasets, logging.Component(baseLogger, "source"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:          source,
		Metrics:         metrics.Pipeline{},
		Logger:          logging.Component(baseLogger, "pipeline"),
		FailOnMalformed: cfg.Pipeline.Strict(),
	})
	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
}

// Load runs the pipeline once.
func (a *Application) Load(ctx context.Context) (*usecase.Dataset, error) {
	return a.pipeline.Load(ctx)
}

// Serve loads the dataset and exposes it over HTTP until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	dataset, err := a.Load(ctx)
	if err != nil {
		return err
	}

	api := httpapi.NewServer(dataset, logging.Component(a.logger, "http"))
	srv := &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      api.Routes(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout(),
		WriteTimeout: a.cfg.HTTP.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting http server", "addr", srv.Addr, "articles", dataset.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Report renders the dataset into the configured HTML file and returns its path.
// state.Selected, when set, must name a loaded article; its graph is expanded.
func (a *Application) Report(ctx context.Context, state view.State) (string, error) {
	dataset, err := a.Load(ctx)
	if err != nil {
		return "", err
	}
	if state.Selected != "" {
		if _, err := dataset.Get(state.Selected); err != nil {
			return "", fmt.Errorf("select article: %w", err)
		}
	}

	out := a.cfg.Report.Output
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := report.NewRenderer(a.cfg.Report.Title).Render(f, dataset.Ordered(domain.SortByRecent), state); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	a.logger.Info("report written", "path", out, "articles", dataset.Len(), "sort", state.Mode, "selected", state.Selected)
	return out, nil
}

// List prints the ranking as a plain table.
func (a *Application) List(ctx context.Context, mode domain.SortMode, w io.Writer) error {
	dataset, err := a.Load(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tSOURCE\tTITLE")
	for i, art := range dataset.Ordered(mode) {
		fmt.Fprintf(tw, "%d\t%.3f\t%s\t%s\n", i+1, curation.Round(art.Score, 3), art.Source, art.Title)
	}
	for _, rj := range dataset.Rejected() {
		fmt.Fprintf(tw, "-\trejected\t%d\t%s: %v\n", rj.Position, rj.Title, rj.Reason)
	}
	return tw.Flush()
}
