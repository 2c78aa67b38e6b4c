package vfs

import "errors"

var (
	// ErrUnsupportedSource is returned when a source kind cannot be scanned
	// reliably on the host platform. Directory sources on a case-insensitive
	// filesystem cannot surface case collisions, so they are rejected outright.
	ErrUnsupportedSource = errors.New("vfs: unsupported source on this platform")

	// ErrNotFound is returned when no layer contains the requested path.
	ErrNotFound = errors.New("vfs: path not found")

	// ErrEntryNotReadable is returned when content is requested for a path
	// that is absent or denotes a directory.
	ErrEntryNotReadable = errors.New("vfs: entry not readable")
)
