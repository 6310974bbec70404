// Package storage declares session persistence for the web service.
//
// A session binds the browser cookie to the bearer token issued by the
// journal service, plus the dashboard state that only lives for the session.
// Journal entries themselves are owned by the journal service.
package storage
