package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"zood.dev/devserver/webroot"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	addr := flag.String("addr", "", "Listen address (host:port); overrides the config file")
	rootDir := flag.String("root", "", "Directory to serve; overrides the config file")
	debug := flag.Bool("debug", false, "Enables additional log output")
	flag.Parse()

	logger := newLogger(os.Stdout, *debug)

	config, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Unable to load config")
	}
	if err = config.applyOverrides(*addr, *rootDir); err != nil {
		logger.Fatal().Err(err).Msg("Invalid command line override")
	}

	root, err := webroot.New(config.RootDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Unable to open serving root")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		// restore the default disposition, so a second interrupt kills us
		stop()
	}()

	if err = run(ctx, config, root, logger); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}

	logger.Info().Msg("Server shutting down. Goodbye.")
}

// run binds the listen address and serves until ctx is canceled.
func run(ctx context.Context, config *serverConfig, root webroot.Root, logger zerolog.Logger) error {
	ln, err := net.Listen("tcp", config.listenAddr())
	if err != nil {
		return errors.Wrapf(err, "unable to bind %s", config.listenAddr())
	}

	logger.Info().Msgf("Starting server on port %d", *config.Port)
	logger.Info().Msgf("Serving files from %s", root.Dir())
	logger.Info().Msgf("Access your application at http://localhost:%d/", *config.Port)
	logger.Info().Msgf("Or from another device at http://%s/", ln.Addr())

	return serve(ctx, ln, newRouter(root, logger), logger)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, logger zerolog.Logger) error {
	server := http.Server{
		Handler:     handler,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 120 * time.Second,
		// no WriteTimeout, so large files can finish streaming
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Debug().Msg("Interrupt received; closing listener")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
