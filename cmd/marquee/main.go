// Command marquee drives the movie explorer state core from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/narwhalmedia/marquee/pkg/config"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/logger"
)

const usage = `usage: marquee [flags] <command> [args]

commands:
  genres                         list catalog genres
  browse [-genre G] [-page N] [-q TEXT]
                                 list movies in a genre
  movie <id>                     show a movie and its reviews
  review -name N -rating R -comment C <id>
                                 add a review to a movie
  theme [show|toggle|light|dark] show or change the theme

flags:
`

func main() {
	staleGuard := flag.Bool("stale-guard", false, "Discard responses superseded by newer requests")
	jsonOut := flag.Bool("json", false, "Print raw state as JSON")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(execute(*staleGuard, *jsonOut, flag.Args()))
}

// execute builds the application, runs one command and releases every
// resource before the exit code is returned.
func execute(staleGuard, jsonOut bool, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	if config.IsProduction(&cfg.Service) {
		cfg.Reviews.Debug = false
	}

	zl, err := cfg.Logger.ToLoggerConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer zl.Sync()
	log := zl.WithFields(interfaces.String("service", cfg.Service.Name))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx, log)

	a, err := newApp(ctx, cfg, log, staleGuard)
	if err != nil {
		log.Error("Failed to start", interfaces.Error(err))
		return 1
	}
	defer a.close()

	out := &printer{w: os.Stdout, json: jsonOut}
	return run(ctx, a, out, args)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, a *app, out *printer, args []string) int {
	cmd, rest := args[0], args[1:]
	ctx = logger.WithFields(ctx, interfaces.String("command", cmd))

	var err error
	switch cmd {
	case "genres":
		err = runGenres(ctx, a, out)
	case "browse":
		err = runBrowse(ctx, a, out, rest)
	case "movie":
		err = runMovie(ctx, a, out, rest)
	case "review":
		err = runReview(ctx, a, out, rest)
	case "theme":
		err = runTheme(ctx, a, out, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		flag.Usage()
		return 2
	}

	if err != nil {
		logger.FromContext(ctx).Debug("Command failed", interfaces.Error(err))
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		return 1
	}
	return 0
}
