package importer

import "errors"

var (
	// ErrUnknownFormat is returned when no importer handles a format name or
	// file extension.
	ErrUnknownFormat = errors.New("importer: unknown format")

	// ErrEmptyInput is returned for content with no diagram in it.
	ErrEmptyInput = errors.New("importer: empty input")
)
