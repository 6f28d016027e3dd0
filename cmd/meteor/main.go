//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mtqe/meteor"
	"github.com/mtqe/meteor/internal/config"
	"github.com/mtqe/meteor/internal/server"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help message")
		configPath  = flag.String("config", "", "Path to configuration file")
		hypotheses  = flag.String("hypotheses", "", "File with system output, one sentence per line")
		references  = flag.String("references", "", "File with translation references, one sentence per line")
		language    = flag.String("language", "", "Stemming language (overrides the config file)")
		perLine     = flag.Bool("per-line", false, "Print one score per input line")
		listen      = flag.String("listen", "", "Run as an HTTP scoring service on this address")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `meteor - METEOR machine-translation quality scoring

Usage:
    meteor -hypotheses FILE -references FILE [options]
    meteor -listen ADDR [options]

Options:
    -hypotheses string
        UTF-8 file with system output, one sentence per line

    -references string
        UTF-8 file with translation references, one sentence per line

    -config string
        Path to configuration file (stages, weights, scoring
        parameters, synonym source). Without it, the stages are
        exact(1.0) and stem(0.6) for english.

    -language string
        Stemming language; overrides the config file

    -per-line
        Print one score per input line before the macro average

    -listen string
        Run as an HTTP scoring service on this address (e.g. :8080)

    -version
        Show version information and exit

    -help
        Show this help message and exit
`)
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("meteor\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Build Time: %s\n", buildTime)
		fmt.Printf("  Git Commit: %s\n", gitCommit)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *language != "" {
		cfg.Language = *language
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	scorer, cleanup, err := buildScorer(ctx, cfg)
	if err != nil {
		logger.Error("failed to build scorer", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if *listen != "" {
		if err := serve(scorer, *listen, logger); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if *hypotheses == "" || *references == "" {
		fmt.Fprintln(os.Stderr, "Error: -hypotheses and -references are required.")
		flag.Usage()
		os.Exit(1)
	}

	if err := scoreFiles(ctx, scorer, *hypotheses, *references, *perLine, logger); err != nil {
		logger.Error("scoring failed", "error", err)
		os.Exit(1)
	}
}

// buildScorer assembles a scorer from the configuration. The returned
// cleanup releases the synonym database pool, if any.
func buildScorer(ctx context.Context, cfg *config.Config) (*meteor.Scorer, func(), error) {
	cleanup := func() {}

	var provider meteor.SynonymProvider
	if cfg.HasStage("synonym") {
		switch cfg.Synonyms.Source {
		case "file":
			p, err := meteor.LoadSynonymsFile(cfg.Synonyms.File)
			if err != nil {
				return nil, nil, err
			}
			provider = p
		case "postgres":
			p, err := meteor.NewPGSynonyms(ctx, cfg.Synonyms.Database.ConnString())
			if err != nil {
				return nil, nil, err
			}
			provider = p
			cleanup = p.Close
		}
	}

	stages := make([]meteor.Stage, 0, len(cfg.Stages))
	for _, sc := range cfg.Stages {
		var (
			stage meteor.Stage
			err   error
		)
		switch sc.Kind {
		case "exact":
			stage, err = meteor.NewExactStage(sc.Weight)
		case "stem":
			stage, err = meteor.NewStemStage(sc.Weight, meteor.Language(cfg.Language))
		case "synonym":
			stage, err = meteor.NewSynonymStage(sc.Weight, provider)
		default:
			err = fmt.Errorf("unknown stage kind: %q", sc.Kind)
		}
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		stages = append(stages, stage)
	}

	tokenizer := meteor.NewTokenizer()
	if cfg.CaseSensitive {
		tokenizer = meteor.NewCaseSensitiveTokenizer()
	}

	params := cfg.Params.Resolve()
	scorer, err := meteor.New(meteor.ScorerConfig{
		Stages:    stages,
		Params:    &params,
		Tokenizer: tokenizer,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return scorer, cleanup, nil
}

// scoreFiles scores two line-aligned files and prints the macro
// average.
func scoreFiles(ctx context.Context, scorer *meteor.Scorer, hypPath, refPath string,
	perLine bool, logger *slog.Logger) error {

	hypotheses, err := readLines(hypPath)
	if err != nil {
		return err
	}
	references, err := readLines(refPath)
	if err != nil {
		return err
	}

	if len(hypotheses) != len(references) {
		return fmt.Errorf("input files must be of same length: %d hypotheses, %d references",
			len(hypotheses), len(references))
	}

	result, err := scorer.ScoreCorpus(ctx, hypotheses, references)
	if err != nil {
		return err
	}

	if perLine {
		for i, pair := range result.Pairs {
			if pair.Err != nil {
				fmt.Printf("%d\terror: %v\n", i+1, pair.Err)
				continue
			}
			fmt.Printf("%d\t%.3f\n", i+1, pair.Score)
		}
	}

	if result.Failed > 0 {
		logger.Warn("some pairs failed to score", "failed", result.Failed)
	}

	fmt.Printf("METEOR macro average: %.3f\n", result.MacroAverage)
	return nil
}

// readLines reads a UTF-8 file, one sentence per line, dropping blank
// lines.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

// serve runs the HTTP scoring service until interrupted.
func serve(scorer *meteor.Scorer, addr string, logger *slog.Logger) error {
	srv := server.New(scorer, logger)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-shutdownCh:
		logger.Info("received shutdown signal", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(ctx)
	}
}
