// Package ws implements the WebSocket hub for the fitlevel server.
//
// Hub manages a set of connected clients and broadcasts the current level
// summary to all of them on a configurable interval (default 5s in
// production).
//
// New(store, interval) creates a Hub.
// Hub.Run(ctx) starts the broadcast ticker — blocks until ctx is cancelled,
// then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, sends the current
// summary immediately on connect, then streams updates on each tick.
//
// Message format sent to clients:
//
//	{
//	  "event": "summary",
//	  "data":  { /* same schema as GET /api/v1/summary */ }
//	}
//
// The upgrader accepts all origins. Apply CORS restrictions at the reverse
// proxy level. WebSocket endpoint is mounted at /ws/stream by the server.
package ws
