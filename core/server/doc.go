// Package server holds the HTTP server configuration.
//
// The serve command owns the Fiber app and its lifecycle; this package only
// defines the settings it listens with.
//
// # Configuration
//
// The Config struct defines the listen host and port and the API key the
// auth middleware checks. An empty ApiKey leaves the routes open, which is
// meant for local runs only.
//
//	SERVER_HOST=0.0.0.0
//	SERVER_PORT=8080
//	SERVER_API_KEY=secret
//
// # Usage
//
// The core/config package embeds Config as the `server` section, and
// cmd/serve.go passes Address() to app.Listen.
package server
