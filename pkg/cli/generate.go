package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/platinummonkey/protopojo/pkg/codegen"
	"github.com/platinummonkey/protopojo/pkg/config"
)

func newGenerateCommand() *Command {
	cmd := &Command{
		Name:        "generate",
		Description: "Generate Java data classes from proto files",
		Flags:       flag.NewFlagSet("generate", flag.ExitOnError),
		Run:         runGenerate,
	}

	cmd.Flags.String("config", "", "Path to a protopojo.yaml manifest")
	cmd.Flags.String("dir", "", "Directory containing proto files (overrides manifest)")
	cmd.Flags.String("out", "", "Output directory for generated files (overrides manifest)")

	return cmd
}

func runGenerate(args []string) error {
	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to a protopojo.yaml manifest")
	dir := flags.String("dir", "", "Directory containing proto files (overrides manifest)")
	out := flags.String("out", "", "Output directory for generated files (overrides manifest)")

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

	logger := newLogger(cfg)

	// Positional arguments name individual files; without them the
	// source directories are scanned.
	files := flags.Args()
	if len(files) == 0 {
		files, err = findProtoFiles(cfg.SourceDirs)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no proto files found in %s", strings.Join(cfg.SourceDirs, ", "))
	}

	generator := codegen.NewGenerator(&codegen.Config{
		EnableCache: cfg.CacheEnabled,
		CacheSize:   cfg.CacheSize,
		CacheTTL:    time.Duration(cfg.CacheTTL),
		Logger:      logger,
	})

	start := time.Now()

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for _, path := range files {
		path := path
		eg.Go(func() error {
			result, err := generator.GenerateFile(path)
			if err != nil {
				return fmt.Errorf("generate %s: %w", path, err)
			}
			if err := codegen.WriteFiles(cfg.OutputDir, result.Files); err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"path":  path,
				"files": len(result.Files),
			}).Info("Generated")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"inputs":   len(files),
		"duration": time.Since(start),
	}).Info("Generation complete")
	return nil
}

// findProtoFiles walks dirs collecting every .proto file.
func findProtoFiles(dirs []string) ([]string, error) {
	var protoFiles []string
	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(path) == ".proto" {
				protoFiles = append(protoFiles, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to find proto files: %w", err)
		}
	}
	return protoFiles, nil
}
