// Package store persists carved puzzle documents on the local
// filesystem.
//
// Layout:
//
//	<root>/
//	  easy/<id>.json
//	  medium/<id>.json
//	  hard/<id>.json
//
// Each artifact is one puzzle.Document encoded by its own Encode method;
// the document id lives in the filename only and is assigned at save
// time as a fresh UUID. Artifacts therefore stay byte-identical to what
// a direct Encode produces.
//
// Save validates before writing, Load validates after reading, so a
// document never crosses the disk boundary in a malformed state. List
// reads only the document header of each file and silently skips
// entries that are not readable puzzle artifacts, returning the rest
// grouped by grade and ordered lexically by id.
//
// All operations honor context cancellation between filesystem steps.
//
// Errors:
//
//   - ErrNilDocument: Save was handed a nil document.
//   - ErrBadID: an id is empty or would escape the storage root.
//   - ErrNotFound: no grade directory holds the requested id.
package store
