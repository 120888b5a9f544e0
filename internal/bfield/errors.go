package bfield

import "errors"

// User-input errors abort the call before any field math runs.
var (
	// ErrPixelShape indicates observers with different pixel grid shapes in one call.
	ErrPixelShape = errors.New("bfield: all observer pixel grids must share one shape")

	// ErrNotInitialized indicates a source with missing geometry or excitation.
	ErrNotInitialized = errors.New("bfield: source geometry or excitation not initialized")

	// ErrBadEntry indicates a source entry that is neither a Source nor a Group.
	ErrBadEntry = errors.New("bfield: source entry must be a Source or a Group")

	// ErrEmptyPath indicates an object with a zero-length path.
	ErrEmptyPath = errors.New("bfield: object path is empty")

	// ErrNoSources / ErrNoObservers indicate empty input lists.
	ErrNoSources   = errors.New("bfield: no sources given")
	ErrNoObservers = errors.New("bfield: no observers given")
)

// Internal defects. These cannot occur through the constructors in the
// magnet package; reaching one means a broken Source implementation.
var (
	// ErrUnknownKind indicates a source kind outside the closed kind set at dispatch.
	ErrUnknownKind = errors.New("bfield: unknown source kind at dispatch")

	// ErrKindMismatch indicates a source whose accessors do not match its declared kind.
	ErrKindMismatch = errors.New("bfield: source accessors do not match declared kind")
)
