// Package web hosts the browser-facing MindPath service.
//
// The service renders the landing, account and dashboard pages on the
// server. Bearer tokens from the journal API stay in the session store; the
// browser only carries an opaque session cookie.
package web
