package main

import (
	"context"
	"errors"
	"fmt"
	"office-lab/infrastructure/channel"
	"office-lab/infrastructure/directory"
	"office-lab/internal"
	"office-lab/observability"
	"office-lab/projection"
	"office-lab/repositories"
	"office-lab/runtime"
	"office-lab/runtime/workers"
	"office-lab/services"
	"office-lab/sink"
	"office-lab/state"
	"os"
	"os/signal"
	"syscall"

	apperrors "office-lab/errors"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or
// a service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Office client terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, drives the presence session, and
// centralizes error reporting so deferred cleanups always execute.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Session store (BadgerDB)
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return exitRuntime, fmt.Errorf("session store opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing session store...")
		_ = db.Close()
	}()

	store := repositories.NewSessionRepository(db, logger)

	// 3. Presence core
	office := state.NewOffice(logger)
	notifier := runtime.NewNotifier(logger, sink.NewTerminalSink(logger, config.Colours), runtime.NotifyDebounce)
	reconciler := runtime.NewReconciler(logger, office, notifier)
	ws := channel.NewWebsocketChannel(config.ChannelURL, logger)
	session := runtime.NewSession(logger, ws, reconciler, notifier)

	activity := projection.NewActivity(config.ActivityCap)
	stats := observability.NewPresenceStats()
	session.Observe(activity.Consume)
	session.Observe(stats.Consume)

	// 4. Bootstrap: resolve the stored session against the directory.
	dir := directory.NewHTTPDirectory(config.DirectoryURL, config.DirectoryTimeout, logger)
	boot := runtime.NewBootstrap(logger, store, dir, office)

	res, err := boot.Run(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoStoredProfile) {
			fmt.Println("No stored profile found. Log in first, then start the office client.")
			return exitConfig, nil
		}
		renderFault(office.Err(), config.Colours)
		return exitRuntime, err
	}

	if err := session.Open(ctx, res); err != nil {
		return exitRuntime, err
	}
	defer func() {
		_ = session.Close()
	}()

	service := services.NewPresenceService(logger, office, session, store, terminalNavigator{log: logger})

	logger.Info("Logged in", "room", res.Current.ID, "rooms", len(res.Rooms))

	// 5. Interactive loop under supervision.
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		NewRenderWorker(logger, office, activity, stats, config.RenderInterval, os.Stdout),
		NewInputWorker(logger, office, service, os.Stdin, os.Stdout),
	)
	supervisor.Run(ctx)

	return exitOK, nil
}

// renderFault shows the terminal fault state. There is no automatic
// recovery: restarting the client is the only way out.
func renderFault(err error, coloured bool) {
	line := fmt.Sprintf("Presence session failed: %v", err)
	if coloured {
		line = color.New(color.BgBlack, color.FgRed).Render(line)
	}
	fmt.Println(line)
	fmt.Println("Restart the client to try again.")
}
