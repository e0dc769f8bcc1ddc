// Package app holds the installable-app metadata (name, theme colour, icons)
// that the host platform reads from the web manifest.
//
// The values are plain configuration. Nothing in the navigation core reads
// them; feature/manifest publishes them for the browser's installer.
package app
