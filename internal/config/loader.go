package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader reads a configuration file into the in-memory form.
type Loader interface {
	// Load reads and parses the configured path. A missing file returns
	// nil, nil: the defaults apply.
	Load() (*fileConfig, error)
}

// FileSystem abstracts file access so tests can substitute fixtures.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// unmarshalFunc parses raw file bytes into the schema.
type unmarshalFunc func(data []byte, v any) error

// fileLoader reads one file with a format-specific unmarshaler.
type fileLoader struct {
	fs        FileSystem
	path      string
	unmarshal unmarshalFunc
}

// NewTOMLLoader creates a loader for a TOML file.
func NewTOMLLoader(path string) Loader {
	return &fileLoader{fs: DefaultFS(), path: path, unmarshal: toml.Unmarshal}
}

// NewYAMLLoader creates a loader for a YAML file.
func NewYAMLLoader(path string) Loader {
	return &fileLoader{fs: DefaultFS(), path: path, unmarshal: yaml.Unmarshal}
}

// NewLoaderWithFS creates a loader with a custom file system, choosing the
// format from the path extension.
func NewLoaderWithFS(fsys FileSystem, path string) (Loader, error) {
	unmarshal, err := unmarshalerForPath(path)
	if err != nil {
		return nil, err
	}
	return &fileLoader{fs: fsys, path: path, unmarshal: unmarshal}, nil
}

// LoaderForPath chooses TOML or YAML from the path extension.
func LoaderForPath(path string) (Loader, error) {
	return NewLoaderWithFS(DefaultFS(), path)
}

func unmarshalerForPath(path string) (unmarshalFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("config: unsupported file extension %q", filepath.Ext(path))
	}
}

// Load reads and parses the configured path.
func (l *fileLoader) Load() (*fileConfig, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}

	var fc fileConfig
	if err := l.unmarshal(data, &fc); err != nil {
		return nil, &ParseError{
			Path:    l.path,
			Message: err.Error(),
			Err:     err,
		}
	}
	return &fc, nil
}
