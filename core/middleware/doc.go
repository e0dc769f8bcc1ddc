// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for protected views (the debug view by default).
//   - rayid: assigns a Request ID (RayID) to every request, stores it in the
//     Fiber locals for logger.WithRayID and echoes it in the X-Ray-ID header.
package middleware
