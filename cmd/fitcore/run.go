package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/fitcore/internal/config"
	"github.com/phrazzld/fitcore/internal/platform/logger"
	"github.com/phrazzld/fitcore/internal/redact"
	"github.com/phrazzld/fitcore/internal/validation"
	"github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK      = 0
	exitError   = 1
	exitInvalid = 2
)

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// run parses args, loads configuration and processes one record from s.in.
// It returns the process exit code.
func run(ctx context.Context, args []string, s streams) int {
	flags := pflag.NewFlagSet("fitcore", pflag.ContinueOnError)
	flags.SetOutput(s.err)

	kind := flags.StringP("kind", "k", "", "record kind, one of: "+kindList())
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("today", "", "pin today to a YYYY-MM-DD date")
	flags.String("timezone", "UTC", "IANA time zone whose calendar defines today")

	for name, key := range map[string]string{
		"log-level": "log.level",
		"today":     "metrics.fixed_date",
		"timezone":  "metrics.timezone",
	} {
		if err := config.BindFlag(flags, name, key); err != nil {
			fmt.Fprintf(s.err, "binding flag %s: %v\n", name, err)
			return exitError
		}
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(s.err, err)
		return exitError
	}

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		fmt.Fprintf(s.err, "failed to load configuration: %s\n", redact.Error(err))
		return exitError
	}

	log, err := logger.Setup(s.err, cfg.Log)
	if err != nil {
		fmt.Fprintf(s.err, "failed to set up logger: %v\n", err)
		return exitError
	}
	log = log.With("run_id", uuid.NewString())
	ctx = logger.WithLogger(ctx, log)

	app, err := newApplication(cfg)
	if err != nil {
		log.Error("failed to initialize application", "error", redact.Error(err))
		return exitError
	}

	raw, err := io.ReadAll(s.in)
	if err != nil {
		log.Error("failed to read input", "error", redact.Error(err))
		return exitError
	}

	result, err := app.process(ctx, validation.Kind(*kind), raw)
	if err != nil {
		log.Error("failed to process record", "kind", *kind, "error", redact.Error(err))
		return exitError
	}

	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Error("failed to write output", "error", redact.Error(err))
		return exitError
	}

	if len(result.Violations) > 0 {
		return exitInvalid
	}
	return exitOK
}

func kindList() string {
	kinds := validation.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
