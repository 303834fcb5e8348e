// Command extract-cv reads a PDF résumé and prints the extracted profile as
// JSON on stdout. Logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/hemant-mistri/portfolio/internal/extractor"
	"github.com/hemant-mistri/portfolio/internal/logger"
	"github.com/hemant-mistri/portfolio/internal/textsource"
	"github.com/hemant-mistri/portfolio/internal/usecase"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		source      string
		decoderName string
		timeout     time.Duration
		logLevel    string
		compact     bool
	)

	flags := pflag.NewFlagSet("extract-cv", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&source, "source", "s", textsource.DefaultSource, "PDF path, file:// URL or http(s):// URL")
	flags.StringVarP(&decoderName, "decoder", "d", textsource.DecoderFitz, "PDF decoder: fitz or plain")
	flags.DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for loading and decoding")
	flags.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	flags.BoolVar(&compact, "compact", false, "print single-line JSON")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	_ = godotenv.Load()
	logger.Init(logger.Config{
		Level:  logLevel,
		Format: "pretty",
		Output: stderr,
	})

	switch flags.NArg() {
	case 0:
	case 1:
		if flags.Changed("source") {
			logger.Error().Msg("give the source either as an argument or with --source, not both")
			return exitUsage
		}
		source = flags.Arg(0)
	default:
		logger.Error().Strs("args", flags.Args()).Msg("expected at most one source argument")
		return exitUsage
	}

	decoder, err := textsource.NewDecoder(decoderName)
	if err != nil {
		logger.Error().Err(err).Msg("invalid --decoder")
		return exitUsage
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	uc := usecase.NewCVUsecase(decoder, extractor.New(), textsource.NewLoader(timeout))
	profile, err := uc.ExtractSource(ctx, source)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("could not read the source document")
		return exitError
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(profile); err != nil {
		logger.Error().Err(err).Msg("write profile")
		return exitError
	}
	return exitOK
}
