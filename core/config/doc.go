// Package config provides configuration management for Wordle Web.
//
// It uses Viper to read environment variables (optionally from a .env file)
// and fills unset keys from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, base path, API key for the debug view
//   - App: installable-app manifest metadata (name, theme colour, icons)
//   - Chunks: where lazy view chunks are read from and the fetch timeout
//   - Storage: S3/MinIO credentials and bucket for published chunks
//   - Log: logging level and format
//
// Nested keys map to upper-case environment variables joined by "_", so
// chunks.source is set with CHUNKS_SOURCE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
