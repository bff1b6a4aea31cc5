// Package store manages the in-memory fitness test state. It provides a
// thread-safe keyed store for raw test submissions and computed level
// records, with optional TTL-based retention and per-user history queries.
package store
