package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/protopojo/pkg/proto"
	"github.com/platinummonkey/protopojo/pkg/schema"
)

// Config holds code generation configuration.
type Config struct {
	EnableCache bool
	CacheSize   int
	CacheTTL    time.Duration
	Logger      *logrus.Logger
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		EnableCache: true,
		CacheSize:   DefaultCacheSize,
		CacheTTL:    DefaultCacheTTL,
	}
}

// Generator turns schema source files into Java sources, caching
// rendered output by source content.
//
// Use NewGenerator to create instances. The zero value is not usable.
type Generator struct {
	renderer *JavaRenderer
	cache    *Cache
	logger   *logrus.Logger
}

// NewGenerator creates a generator. A nil config uses defaults.
func NewGenerator(config *Config) *Generator {
	if config == nil {
		config = DefaultConfig()
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}

	g := &Generator{
		renderer: NewJavaRenderer(),
		logger:   logger,
	}
	if config.EnableCache {
		g.cache = NewCache(&CacheConfig{
			MaxEntries: config.CacheSize,
			TTL:        config.CacheTTL,
		})
	}
	return g
}

// Generate runs one job: read (unless the request carries the source),
// parse, and render. Any read or parse failure aborts the whole job;
// there is never partial output for a file.
func (g *Generator) Generate(req *Request) (*Result, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	start := time.Now()

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	source := req.Source
	if source == nil {
		data, err := os.ReadFile(req.Path)
		if err != nil {
			return nil, &proto.ReadError{Path: req.Path, Err: err}
		}
		source = data
	}

	var key string
	if g.cache != nil {
		key = HashSource(source)
		if files, ok := g.cache.Get(key); ok {
			g.logger.WithFields(logrus.Fields{
				"request_id": id,
				"path":       req.Path,
			}).Debug("Cache hit")
			return &Result{
				ID:       id,
				Files:    files,
				CacheHit: true,
				Duration: time.Since(start),
			}, nil
		}
	}

	file, err := proto.Parse(req.Path, string(source))
	if err != nil {
		return nil, err
	}

	files := g.renderer.Render(schema.Build(file))
	if g.cache != nil {
		g.cache.Add(key, files)
	}

	g.logger.WithFields(logrus.Fields{
		"request_id": id,
		"path":       req.Path,
		"files":      len(files),
		"duration":   time.Since(start),
	}).Debug("Generated Java sources")

	return &Result{
		ID:       id,
		Files:    files,
		Duration: time.Since(start),
	}, nil
}

// GenerateFile runs one job for the file at path.
func (g *Generator) GenerateFile(path string) (*Result, error) {
	return g.Generate(&Request{Path: path})
}

// CacheStats reports cache counters, all zero when caching is off.
func (g *Generator) CacheStats() CacheStats {
	if g.cache == nil {
		return CacheStats{}
	}
	return g.cache.Stats()
}

// WriteFiles writes generated files under outDir, creating package
// directories as needed.
func WriteFiles(outDir string, files []GeneratedFile) error {
	for _, f := range files {
		target := filepath.Join(outDir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(target, f.Content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}
