// Command hexcube-gen builds the solved 16×16×16 hexadecimal Latin cube,
// certifies every constraint family, and emits playable puzzle
// artifacts.
//
// Modes:
//
//	hexcube-gen                          # carve an easy puzzle into cached-puzzle.json
//	hexcube-gen -difficulty hard -seed 7 # reproducible hard carve
//	hexcube-gen -layers                  # print the 16 solved layers instead
//
// Logs go to stderr; layer dumps go to stdout. Exit code 0 on success, 1
// on any failure. A constraint violation aborts the run before any
// artifact is written.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/hexcube/carve"
	"github.com/katalvlaran/hexcube/cube"
	"github.com/katalvlaran/hexcube/puzzle"
	"github.com/katalvlaran/hexcube/store"
	"github.com/katalvlaran/hexcube/verify"
)

// config carries the parsed command line.
type config struct {
	difficulty    string
	seed          int64
	out           string
	dataDir       string
	layers        bool
	workers       int
	allViolations bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.difficulty, "difficulty", "easy", "puzzle grade: easy|medium|hard")
	flag.Int64Var(&cfg.seed, "seed", 0, "carve shuffle seed; 0 selects the fixed default stream")
	flag.StringVar(&cfg.out, "out", "cached-puzzle.json", "puzzle artifact path; empty disables the file")
	flag.StringVar(&cfg.dataDir, "data", "", "puzzle store root; empty disables the store")
	flag.BoolVar(&cfg.layers, "layers", false, "print the 16 solved layers instead of carving")
	flag.IntVar(&cfg.workers, "workers", 1, "concurrent verification slices")
	flag.BoolVar(&cfg.allViolations, "all-violations", false, "report every constraint violation instead of stopping at the first")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*levelStr)}))

	if err := run(cfg, logger); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

// parseLevel maps the -log-level flag onto a slog level, defaulting to
// info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// run drives the pipeline: construct, certify, then carve and write (or
// dump layers).
func run(cfg config, logger *slog.Logger) error {
	d, err := puzzle.ParseDifficulty(cfg.difficulty)
	if err != nil {
		return err
	}

	logger.Info("constructing cube", "edge", cube.Size, "cells", cube.CellCount)
	c := cube.New()

	logger.Info("verifying constraints", "workers", cfg.workers)
	vopts := verify.DefaultOptions()
	vopts.Workers = cfg.workers
	vopts.CollectAll = cfg.allViolations
	vs, err := verify.Verify(c, &vopts)
	if err != nil {
		if errors.Is(err, verify.ErrViolation) {
			for _, v := range vs {
				logger.Error("constraint violated", "detail", v.Error())
			}
		}

		return err
	}
	logger.Info("constraints certified")

	if cfg.layers {
		return dumpLayers(c)
	}

	logger.Info("carving puzzle", "difficulty", d, "seed", cfg.seed)
	doc, err := carve.Puzzle(c, d, &carve.Options{Seed: cfg.seed})
	if err != nil {
		return err
	}
	logger.Info("puzzle carved",
		"given", doc.GivenCellCount,
		"empty", doc.EmptyCellCount,
		"revealed_pct", doc.GivenCellCount*100/cube.CellCount,
	)

	if cfg.out != "" {
		size, err := writeArtifact(cfg.out, doc)
		if err != nil {
			return err
		}
		logger.Info("artifact written", "path", cfg.out, "bytes", size)
	}
	if cfg.dataDir != "" {
		id, err := store.NewFS(cfg.dataDir).Save(context.Background(), doc)
		if err != nil {
			return err
		}
		logger.Info("artifact stored", "root", cfg.dataDir, "id", id)
	}

	return nil
}

// dumpLayers renders every layer to stdout in ascending order.
func dumpLayers(c *cube.Cube) error {
	for layer := 0; layer < cube.Size; layer++ {
		if err := c.WriteLayer(os.Stdout, layer); err != nil {
			return err
		}
	}

	return nil
}

// writeArtifact encodes doc at path, creating parent directories, and
// returns the byte size written.
func writeArtifact(path string, doc *puzzle.Document) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create artifact directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("write artifact: %w", err)
	}

	return buf.Len(), nil
}
