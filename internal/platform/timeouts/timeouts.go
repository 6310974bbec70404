// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// APIRequest caps the time allowed for a single call to the journal API
// when no explicit timeout is configured.
const APIRequest = 30 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionTTL bounds a browser session when the bearer token carries no
// earlier expiry.
const SessionTTL = 24 * time.Hour
