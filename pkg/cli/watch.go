package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/protopojo/pkg/codegen"
	"github.com/platinummonkey/protopojo/pkg/config"
)

func newWatchCommand() *Command {
	cmd := &Command{
		Name:        "watch",
		Description: "Watch proto files and regenerate on change",
		Flags:       flag.NewFlagSet("watch", flag.ExitOnError),
		Run:         runWatch,
	}

	cmd.Flags.String("config", "", "Path to a protopojo.yaml manifest")
	cmd.Flags.String("dir", "", "Directory containing proto files (overrides manifest)")
	cmd.Flags.String("out", "", "Output directory for generated files (overrides manifest)")
	cmd.Flags.Duration("delay", 0, "Debounce delay before regenerating (overrides manifest)")

	return cmd
}

func runWatch(args []string) error {
	flags := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to a protopojo.yaml manifest")
	dir := flags.String("dir", "", "Directory containing proto files (overrides manifest)")
	out := flags.String("out", "", "Output directory for generated files (overrides manifest)")
	delay := flags.Duration("delay", 0, "Debounce delay before regenerating (overrides manifest)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.SourceDirs = []string{*dir}
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *delay > 0 {
		cfg.WatchDelay = config.Duration(*delay)
	}

	logger := newLogger(cfg)

	generator := codegen.NewGenerator(&codegen.Config{
		EnableCache: cfg.CacheEnabled,
		CacheSize:   cfg.CacheSize,
		CacheTTL:    time.Duration(cfg.CacheTTL),
		Logger:      logger,
	})

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range cfg.SourceDirs {
		if err := setupWatcher(watcher, root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	// Initial pass before waiting for changes.
	if err := regenerate(generator, cfg, logger); err != nil {
		logger.WithError(err).Error("Initial generation failed")
	}

	delayDur := time.Duration(cfg.WatchDelay)
	debounce := time.NewTimer(delayDur)
	if !debounce.Stop() {
		<-debounce.C
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	logger.WithField("dirs", cfg.SourceDirs).Info("Watching for proto file changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only care about write and create events for .proto files
			if (event.Op&(fsnotify.Write|fsnotify.Create) != 0) && filepath.Ext(event.Name) == ".proto" {
				logger.WithField("path", event.Name).Info("Modified file")
				debounce.Reset(delayDur)
			}

			// Also watch new directories
			if event.Op&fsnotify.Create != 0 {
				fi, err := os.Stat(event.Name)
				if err == nil && fi.IsDir() {
					logger.WithField("path", event.Name).Info("New directory")
					if err := watcher.Add(event.Name); err != nil {
						logger.WithError(err).Error("Failed to watch new directory")
					}
				}
			}
		case <-debounce.C:
			if err := regenerate(generator, cfg, logger); err != nil {
				logger.WithError(err).Error("Regeneration failed")
			}
			stats := generator.CacheStats()
			logger.WithFields(logrus.Fields{
				"hits":    stats.Hits,
				"misses":  stats.Misses,
				"entries": stats.Entries,
			}).Debug("Cache stats")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Error("Watcher error")
		case <-sig:
			logger.Info("Shutting down")
			return nil
		}
	}
}

// setupWatcher recursively adds all directories to the watcher
func setupWatcher(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// regenerate runs one generation pass over every proto file. Files
// whose output came from the cache are not rewritten.
func regenerate(generator *codegen.Generator, cfg *config.Config, logger *logrus.Logger) error {
	files, err := findProtoFiles(cfg.SourceDirs)
	if err != nil {
		return err
	}

	start := time.Now()
	written := 0
	for _, path := range files {
		result, err := generator.GenerateFile(path)
		if err != nil {
			logger.WithError(err).Error("Generation failed")
			continue
		}
		if result.CacheHit {
			continue
		}
		if err := codegen.WriteFiles(cfg.OutputDir, result.Files); err != nil {
			return err
		}
		written += len(result.Files)
	}

	logger.WithFields(logrus.Fields{
		"inputs":   len(files),
		"written":  written,
		"duration": time.Since(start),
	}).Info("Regenerated")
	return nil
}
