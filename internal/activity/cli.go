package activity

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/training"
)

type CLI struct {
	writer          io.Writer
	cfg             config.Config
	activityService *Service
	logger          *slog.Logger
}

func NewCLI(w io.Writer, cfg config.Config, logger *slog.Logger, activityService *Service) *CLI {
	return &CLI{
		writer:          w,
		cfg:             cfg,
		activityService: activityService,
		logger:          logger,
	}
}

func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		c.Usage()
		return nil
	}

	switch args[0] {
	case "show":
		return c.Show(args[1:])
	case "gpx":
		return c.ShowGPX(args[1:])
	case "api":
		return c.RunAPI(context.Background())
	default:
		c.Usage()
	}
	return nil
}

func (c *CLI) Usage() {
	kinds := training.Kinds()
	codes := make([]string, 0, len(kinds))
	for _, k := range kinds {
		codes = append(codes, k.Code())
	}
	fmt.Fprintf(c.writer, "Usage: ftracker [command] [flags]\n--help show this message\n\n"+
		"\tshow [--type %s --data 15000,1,75]\n"+
		"\tgpx --file track.gpx --type RUN|WLK --weight 75 [--height 180]\n"+
		"\tapi\n", strings.Join(codes, "|"))
}

// Show prints the summary of one package, or of the sample packages when no
// type is given. Every failing package is logged and returned.
func (c *CLI) Show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(c.writer)
	var code, data string
	fs.StringVar(&code, "type", "", "workout type code")
	fs.StringVar(&data, "data", "", "comma separated sensor values")
	fs.Usage = c.Usage

	if err := fs.Parse(args); err != nil {
		return err
	}

	packages := training.Samples()
	if code != "" {
		values, err := parseData(data)
		if err != nil {
			return err
		}
		packages = []training.Package{{Code: code, Data: values}}
	}

	return c.showPackages(context.Background(), packages)
}

func (c *CLI) ShowGPX(args []string) error {
	fs := flag.NewFlagSet("gpx", flag.ContinueOnError)
	fs.SetOutput(c.writer)
	var gpxFile, code string
	var weight, height float64
	fs.StringVar(&gpxFile, "file", "", "path to gpx file")
	fs.StringVar(&code, "type", training.KindRunning.Code(), "workout type code, RUN or WLK")
	fs.Float64Var(&weight, "weight", 0, "body weight in kg")
	fs.Float64Var(&height, "height", 0, "height in cm, required for WLK")
	fs.Usage = c.Usage

	if err := fs.Parse(args); err != nil {
		return err
	}

	if gpxFile == "" {
		fs.Usage()
		return errors.New("missing --file")
	}

	c.logger.Info("Reading gpx file", slog.String("gpx_file", gpxFile))

	kind, err := training.ParseKind(code)
	if err != nil {
		return err
	}

	gpxBytes, err := readGPXFile(gpxFile)
	if err != nil {
		return err
	}

	p, err := PackageFromGPX(gpxBytes, Track{Kind: kind, Weight: weight, Height: height})
	if err != nil {
		return err
	}

	return c.showPackages(context.Background(), []training.Package{p})
}

func (c *CLI) showPackages(ctx context.Context, packages []training.Package) error {
	var errs []error
	for _, p := range packages {
		summary, err := c.activityService.Summarize(ctx, p.Code, p.Data)
		if err != nil {
			c.logger.Error("Error summarizing package", slog.String("workout_type", p.Code), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(c.writer, summary.Message)
	}
	return errors.Join(errs...)
}

func (c *CLI) RunAPI(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	mux := NewAPI(c.logger, c.activityService)

	server := &http.Server{
		Addr:         c.cfg.HTTPAddress,
		Handler:      mux,
		ReadTimeout:  c.cfg.ReadTimeout,
		WriteTimeout: c.cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.logger.Error("Error shutting down server", slog.Any("error", err))
		}
	}()

	c.logger.Info("Starting server", slog.String("address", c.cfg.HTTPAddress))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		c.logger.Error("Error starting server", slog.Any("error", err))
		cancel()
		return err
	}

	return nil
}

func parseData(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sensor value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
