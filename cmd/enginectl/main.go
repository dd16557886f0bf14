package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sketchsync/engine/internal/config"
	"github.com/sketchsync/engine/internal/diff"
	"github.com/sketchsync/engine/internal/logging"
	"github.com/sketchsync/engine/internal/override"
	"github.com/sketchsync/engine/internal/parser"
	"github.com/sketchsync/engine/internal/render"
	"github.com/sketchsync/engine/internal/sync"
)

func main() {
	htmlPath := flag.String("html", "", "HTML file to patch")
	overridesPath := flag.String("overrides", "", "Override log file (json/yaml/toml, optionally .gz)")
	outPath := flag.String("out", "", "Output file (stdout when empty)")
	sanitize := flag.Bool("sanitize", false, "Sanitize html replacement fragments")
	flag.Parse()

	if *htmlPath == "" || *overridesPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadOrDefault()
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log, *htmlPath, *overridesPath, *outPath, *sanitize); err != nil {
		log.Error("patch failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logging.Logger, htmlPath, overridesPath, outPath string, sanitize bool) error {
	raw, err := os.ReadFile(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to read html: %w", err)
	}

	logFile, err := override.ReadLogFile(overridesPath)
	if err != nil {
		return fmt.Errorf("failed to read override log: %w", err)
	}

	parsed, err := parser.ParseWithLimit(string(raw), cfg.Engine.MaxHTMLSize)
	if err != nil {
		return err
	}

	differ := diff.NewEngine(log, nil)
	if sanitize || cfg.Engine.SanitizeHTML {
		differ.EnableSanitizer()
	}

	engine := sync.NewEngine(differ, log, nil)
	engine.SetTolerance(cfg.Engine.GeometryTolerance)

	const surfaceID = "cli"
	engine.InitSync(surfaceID, parsed)
	engine.SetRoot(surfaceID, render.NewDocumentTarget(parsed))

	for _, o := range logFile.Overrides {
		engine.ApplyOverride(surfaceID, o)
	}

	state, _ := engine.GetState(surfaceID)
	log.Info("override log applied",
		zap.Int("overrides", len(state.Overrides)),
		zap.Int("selectors", len(state.Store().Selectors())))

	patched, err := state.Target.HTML()
	if err != nil {
		return fmt.Errorf("failed to serialize patched document: %w", err)
	}

	if outPath == "" {
		fmt.Println(patched)
		return nil
	}
	return os.WriteFile(outPath, []byte(patched), 0o644)
}
