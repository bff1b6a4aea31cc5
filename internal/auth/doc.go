// Package auth provides API key authentication middleware for the fitlevel
// HTTP server.
//
// Middleware(mode, header, key, next) validates the API key from the named
// HTTP header. When mode != "apikey" or key == "", all requests pass through
// (useful for local development with auth disabled). When the key is
// incorrect or absent, the middleware returns 401 with a JSON error body.
package auth
