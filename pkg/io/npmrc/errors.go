package npmrc

import "errors"

var (
	// ErrEmptyPath is returned when a Store is used without a file path.
	ErrEmptyPath = errors.New("npm user config path is empty")
	// ErrLoad wraps failures while reading or parsing the config file.
	ErrLoad = errors.New("failed to load npm user config")
	// ErrPersist wraps failures while writing the config file.
	ErrPersist = errors.New("failed to save npm user config")
)
