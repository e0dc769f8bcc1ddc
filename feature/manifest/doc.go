// Package manifest publishes the installable-app manifest.
//
// The manifest is pure configuration (core/app) consumed by the browser's
// installer. Icon paths and the start URL are resolved against the base path.
//
// # HTTP Endpoints
//
//   - GET <base>manifest.webmanifest : the web app manifest.
package manifest
