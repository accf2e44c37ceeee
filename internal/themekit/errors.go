package themekit

import "errors"

// Sentinel errors for theme kit operations.
var (
	// ErrKitNotFound indicates the requested kit does not exist.
	ErrKitNotFound = errors.New("theme kit not found")

	// ErrInvalidKitName indicates the kit name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidKitName = errors.New("invalid theme kit name")

	// ErrInvalidKitDir indicates the configured kit directory is not a
	// valid, readable directory.
	ErrInvalidKitDir = errors.New("invalid theme kit directory")

	// ErrKitRead indicates an I/O error occurred while reading a kit file.
	ErrKitRead = errors.New("failed to read theme kit")

	// ErrKitParse indicates a kit file exists but is not valid YAML.
	ErrKitParse = errors.New("failed to parse theme kit")

	// ErrPathTraversal indicates an attempt to access files outside the
	// kit directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
