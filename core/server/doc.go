// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the base path the app is served
// under (the original build serves from /wordle-web/), and the optional API
// key guarding the debug view.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go and the
// shell feature to mount routes.
package server
