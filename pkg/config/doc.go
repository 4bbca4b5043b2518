// Package config provides application configuration from a YAML
// manifest and environment variables.
//
// # Overview
//
// Configuration is layered: built-in defaults, then an optional
// protopojo.yaml manifest, then PROTOPOJO_* environment variables.
// Later layers win. The merged result is validated before use.
//
// # Manifest
//
// A manifest in the working directory is picked up automatically:
//
//	source_dirs:
//	  - proto
//	output_dir: generated
//	workers: 4
//	cache_enabled: true
//	cache_size: 256
//	cache_ttl: 5m
//	watch_delay: 2s
//	log_level: info
//
// # Environment Variables
//
//	PROTOPOJO_OUTPUT_DIR="generated"
//	PROTOPOJO_WORKERS="4"
//	PROTOPOJO_CACHE_ENABLED="true"
//	PROTOPOJO_CACHE_SIZE="256"
//	PROTOPOJO_CACHE_TTL="5m"
//	PROTOPOJO_WATCH_DELAY="2s"
//	PROTOPOJO_LOG_LEVEL="info"  # debug, info, warn, error
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Output: %s\n", cfg.OutputDir)
//	fmt.Printf("Workers: %d\n", cfg.Workers)
package config
