// Package api implements the HTTP REST API and WebSocket server for taskgate.
//
// This package provides:
//   - Registration and login endpoints issuing access tokens
//   - Role and ownership gated task CRUD endpoints
//   - WebSocket hub for real-time task event broadcasts
//   - Middleware stack (request ID, logging, recovery, CORS, auth)
//
// # Security
//
// Authentication uses stateless signed tokens presented as a Bearer header.
// The auth middleware verifies the token and places the claims in the
// request context; handlers consult the ownership policy per record.
// WebSocket connections use single-use tickets to keep tokens out of URLs.
//
// # Error ordering
//
// Record handlers report not-found before consulting the ownership policy,
// so a caller cannot learn whether a record exists from a 403.
package api
