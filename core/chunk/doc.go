// Package chunk locates the independently retrievable view units that lazy
// routes fetch on first visit.
//
// A chunk is an HTML template fragment named after its view (for example
// "debug" is stored as "chunks/debug.html"). Two sources are provided:
//
//   - EmbedSource reads chunks from the build output compiled into the binary.
//   - StorageSource reads chunks from an S3/MinIO bucket, so views can be
//     republished without a redeploy.
//
// The source is selected by the "chunks.source" configuration key.
package chunk
