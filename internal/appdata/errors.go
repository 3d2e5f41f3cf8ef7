package appdata

import "errors"

var (
	ErrUnknownPlatform     = errors.New("unknown platform")
	ErrInvalidAmount       = errors.New("amount must be a finite, non-negative number")
	ErrEmptyDescription    = errors.New("description must not be empty")
	ErrInvalidDay          = errors.New("day must be between 1 and 31")
	ErrInvalidRating       = errors.New("ratings must be between 0 and 5")
	ErrInvalidDate         = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidTemplateType = errors.New("template type must be swipe or campaign")
	ErrEmptyTemplate       = errors.New("template title and content must not be empty")
	ErrEmptyWin            = errors.New("win must not be empty")
	ErrEmptyNote           = errors.New("note must not be empty")

	ErrCorruptRecord      = errors.New("stored record is corrupt")
	ErrUnsupportedVersion = errors.New("stored record version is newer than supported")
)
