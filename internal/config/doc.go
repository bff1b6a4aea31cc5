// Package config loads the server configuration from the `server:` section
// of config.yaml.
//
// Config fields:
//   - HTTPPort        — port for the REST API and WebSocket hub (default 8080)
//   - Auth.Mode       — "apikey" or "none"
//   - Auth.KeyEnv     — environment variable holding the expected API key
//   - Auth.Header     — HTTP header name (default "x-api-key")
//   - Retention.TTL   — how long stored records remain live (default 0 = keep)
//   - Stream.Interval — WebSocket broadcast interval (default 5s)
//   - Alerts          — rule definitions and webhook delivery targets
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) hot-reloads the file on write; the server uses
// it to apply alert rule changes without a restart.
package config
