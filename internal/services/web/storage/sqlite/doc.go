// Package sqlite provides the web session store backed by a SQLite file.
//
// The store only holds browser sessions and their dashboard state; journal
// entries stay with the journal service.
package sqlite
