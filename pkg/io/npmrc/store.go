package npmrc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/devantler-tech/jnl/pkg/registry"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	dirPermUserRWX = 0o700
	filePermUserRW = 0o600
	tempFilePrefix = ".npmrc-"
)

// loadOptions reads .npmrc the way npm does: only "=" separates keys from
// values (keys such as "//host/:_authToken" contain colons), "#", ";" and a
// trailing backslash inside values are literal, and unparseable lines are skipped.
// Repeated keys are npm arrays ("ca[]=...") and keep every value in order.
func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		KeyValueDelimiters:         "=",
		IgnoreInlineComment:        true,
		IgnoreContinuation:         true,
		SkipUnrecognizableLines:    true,
		AllowBooleanKeys:           true,
		AllowShadows:               true,
		AllowDuplicateShadowValues: true,
	}
}

// Store is the user's npm configuration file.
type Store struct {
	fs     afero.Fs
	path   string
	file   *ini.File
	logger *slog.Logger
}

// Compile-time interface compliance verification.
var _ registry.MutableNamespace = (*Store)(nil)

// NewStore creates a Store for the file at path on fsys. Nothing is read
// until Load is called; a nil logger falls back to slog.Default.
func NewStore(fsys afero.Fs, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		fs:     fsys,
		path:   path,
		file:   ini.Empty(loadOptions()),
		logger: logger,
	}
}

// Path returns the location of the config file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file loads as an empty config.
func (s *Store) Load() error {
	if s.path == "" {
		return ErrEmptyPath
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w %s: %w", ErrLoad, s.path, err)
		}

		s.logger.Debug("npm user config not found, starting empty", "path", s.path)

		data = nil
	}

	file, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrLoad, s.path, err)
	}

	s.file = file
	s.logger.Debug("loaded npm user config", "path", s.path, "entries", len(s.section().Keys()))

	return nil
}

// Save writes the config to a temporary file beside the target and renames
// it into place, so readers never observe a partially written file.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrEmptyPath
	}

	content := render(s.file)
	dir := filepath.Dir(s.path)

	err := s.fs.MkdirAll(dir, dirPermUserRWX)
	if err != nil {
		return fmt.Errorf("%w %s: create directory: %w", ErrPersist, s.path, err)
	}

	err = s.writeAtomically(dir, content)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrPersist, s.path, err)
	}

	s.logger.Debug("saved npm user config", "path", s.path)

	return nil
}

func (s *Store) writeAtomically(dir string, content []byte) error {
	tmp, err := afero.TempFile(s.fs, dir, tempFilePrefix)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(content)

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err == nil {
		err = s.fs.Chmod(tmpName, filePermUserRW)
	}

	if err == nil {
		err = s.fs.Rename(tmpName, s.path)
	}

	if err != nil {
		_ = s.fs.Remove(tmpName)

		return fmt.Errorf("write %s: %w", tmpName, err)
	}

	return nil
}

// Keys returns the top-level keys in file order.
func (s *Store) Keys() []string {
	return s.section().KeyStrings()
}

// Get returns the value of a top-level key.
func (s *Store) Get(key string) (string, bool) {
	section := s.section()
	if !section.HasKey(key) {
		return "", false
	}

	return section.Key(key).String(), true
}

// Set stores a top-level key, replacing any previous value. A repeated key
// collapses to the single new value and keeps its comment.
func (s *Store) Set(key, value string) {
	section := s.section()

	if !section.HasKey(key) {
		_, _ = section.NewKey(key, value)

		return
	}

	existing := section.Key(key)
	if len(existing.ValueWithShadows()) <= 1 {
		existing.SetValue(value)

		return
	}

	comment := existing.Comment
	section.DeleteKey(key)

	replaced, err := section.NewKey(key, value)
	if err == nil {
		replaced.Comment = comment
	}
}

// Delete removes a top-level key with all its repeated values. Missing keys are ignored.
func (s *Store) Delete(key string) {
	s.section().DeleteKey(key)
}

func (s *Store) section() *ini.Section {
	return s.file.Section(ini.DefaultSection)
}

// render writes the file as npm reads it: "key=value" lines, one per value of
// a repeated key, comments kept verbatim above their key. Key names are never
// quoted, since npm would keep the quotes as part of the name.
func render(file *ini.File) []byte {
	var buf bytes.Buffer

	for _, section := range file.Sections() {
		writeComment(&buf, section.Comment)

		if section.Name() != ini.DefaultSection {
			buf.WriteString("[" + section.Name() + "]\n")
		}

		for _, key := range section.Keys() {
			writeComment(&buf, key.Comment)

			values := key.ValueWithShadows()
			if len(values) == 0 {
				values = []string{""}
			}

			for _, value := range values {
				buf.WriteString(key.Name() + "=" + value + "\n")
			}
		}
	}

	return buf.Bytes()
}

func writeComment(buf *bytes.Buffer, comment string) {
	if comment == "" {
		return
	}

	for line := range strings.Lines(comment) {
		buf.WriteString(strings.TrimRight(line, "\r\n") + "\n")
	}
}
