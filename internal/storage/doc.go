// Package storage defines the persistence interfaces for unit definitions.
//
// Definitions are the flat maps the battle factories read. A store keeps
// them grouped by side so a roster can be rebuilt without the original
// Lua or JSON file. The SQLite implementation lives in the sqlite
// subpackage.
//
// # Error Types
//
//   - ErrNotFound: a requested unit id is not stored.
package storage
