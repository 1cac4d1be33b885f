package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/brianm/hexnote/pkg/config"
	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Config files read before --config. Later files may not contradict
// earlier ones.
var defaultConfigPaths = []string{
	"~/.config/hexnote/config.yaml",
	"~/.config/hexnote/config.d/*.yaml",
}

func main() {
	defaults, err := config.LoadAndUnifyPaths(defaultConfigPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cli HexnoteCLI
	kctx := kong.Parse(&cli,
		kong.Name("hexnote"),
		kong.Description("Hexdump with typed, labeled annotations."),
		kong.UsageOnError(),
		kong.Resolvers(config.Resolver(defaults)),
		kong.Configuration(config.KongLoader),
	)

	logger := newLogger(os.Stderr, cli.Verbose)
	err = kctx.Run(logger, &Streams{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		LookupEnv: os.LookupEnv,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger maps -v counts to levels: none is warn, -v info, -vv debug.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}
