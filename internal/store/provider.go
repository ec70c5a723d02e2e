// Package store defines the section document persistence abstraction.
package store

// Provider is the interface for section document operations. One JSON
// document is persisted per section name; documents are replaced wholesale,
// never patched.
type Provider interface {
	// List returns the names of every persisted section.
	List() ([]string, error)
	// Read returns the raw JSON bytes of the document for section.
	// Returns apperr.ErrNotFound when no document exists.
	Read(section string) ([]byte, error)
	// Write atomically replaces the document for section.
	Write(section string, doc []byte) error
	// Exists reports whether a document is persisted for section.
	Exists(section string) bool
}
