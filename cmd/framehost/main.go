package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hostingcloud/framehost/internal/config"
	"github.com/hostingcloud/framehost/internal/handler"
	"github.com/hostingcloud/framehost/internal/logger"
	"github.com/hostingcloud/framehost/internal/middleware"
	"github.com/hostingcloud/framehost/internal/page"
	"github.com/hostingcloud/framehost/internal/server"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// serveFlags returns fresh flag instances so the app and the serve command
// each get their own.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "frame-src",
			Aliases: []string{"f"},
			Value:   config.DefaultFrameSrc,
			Usage:   "URL embedded in the page iframe",
			EnvVars: []string{"FRAME_SRC"},
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "framehost",
		Usage: "Serve the HostingCloud shell page",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		}, serveFlags()...),
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  serveFlags(),
				Action: runServe,
			},
		},
		Action: runServe,
	}
}

// buildHandler renders the page once and wires it behind the middleware chain.
func buildHandler(cfg config.Config) (http.Handler, error) {
	index, err := page.Render(cfg.FrameSrc)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	handler.New(index).RegisterRoutes(mux)

	return middleware.RequestID(middleware.AccessLog(slog.Default(), mux)), nil
}

// stringFlag returns the value of name from the nearest context in the
// lineage that set it explicitly (command line or env), so that
// "framehost --port 9000 serve" is not shadowed by serve's own default.
func stringFlag(c *cli.Context, name string) string {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx.String(name)
		}
	}
	return c.String(name)
}

func configFromContext(c *cli.Context) config.Config {
	cfg := config.Config{
		Port:     stringFlag(c, "port"),
		FrameSrc: stringFlag(c, "frame-src"),
	}
	if cfg.Port == "" {
		cfg.Port = config.DefaultPort
	}
	if cfg.FrameSrc == "" {
		cfg.FrameSrc = config.DefaultFrameSrc
	}
	return cfg
}

func runServe(c *cli.Context) error {
	cfg := configFromContext(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	h, err := buildHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to build page: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("serving shell page", "frame_src", cfg.FrameSrc, "server_addr", "http://localhost:"+cfg.Port)
	return server.Run(ctx, server.New(cfg.Addr(), h))
}
