// Package api implements the HTTP REST API for the fitlevel server.
//
// New(store, alerts) returns an http.Handler that serves:
//
//	POST /api/v1/tests              — submit a fitness test, returns computed levels
//	GET  /api/v1/tests/{id}         — stored submission; 404 if unknown or expired
//	GET  /api/v1/levels/{id}        — stored level record
//	GET  /api/v1/users/{id}/levels  — level history for one user, newest first
//	GET  /api/v1/summary            — global level distribution across live records
//	GET  /api/v1/alerts             — active alerts
//	GET  /api/v1/health             — liveness + record counts
//
// All endpoints:
//   - Respond with Content-Type: application/json
//   - Return 405 for unsupported methods
//   - Read live records from the store (expired records excluded)
//
// Request validation lives in validate.go, JSON types in types.go. No
// external HTTP framework is used.
package api
