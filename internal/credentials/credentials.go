// Package credentials stores the Alpaca API key pair in a plain-text .env file.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the credential file inside the configured directory.
const FileName = ".env"

const (
	keyAPI    = "API_KEY"
	keySecret = "SECRET_KEY"
)

// ErrNotFound is returned by Load when no credential file exists.
var ErrNotFound = errors.New("credentials not found")

// Credentials is an Alpaca key pair.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Store is the capability the app queries at startup to decide whether credential capture is needed.
type Store interface {
	Exists() bool
	Load() (Credentials, error)
	Save(Credentials) error
}

// FileStore keeps credentials at Dir/.env as API_KEY=... and SECRET_KEY=... lines.
type FileStore struct {
	Dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store rooted at dir ("" means the working directory).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{Dir: dir}
}

// Path is the credential file location.
func (s *FileStore) Path() string { return filepath.Join(s.Dir, FileName) }

// Exists reports whether the credential file is present.
func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.Path())
	return err == nil && !info.IsDir()
}

// Load reads the key pair through viper's env codec.
func (s *FileStore) Load() (Credentials, error) {
	if !s.Exists() {
		return Credentials{}, fmt.Errorf("%w at %s", ErrNotFound, s.Path())
	}
	v := viper.New()
	v.SetConfigFile(s.Path())
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return Credentials{}, fmt.Errorf("read %s: %w", s.Path(), err)
	}
	c := Credentials{
		APIKey:    strings.TrimSpace(v.GetString(keyAPI)),
		SecretKey: strings.TrimSpace(v.GetString(keySecret)),
	}
	if c.APIKey == "" || c.SecretKey == "" {
		return Credentials{}, fmt.Errorf("%s must set both %s and %s", s.Path(), keyAPI, keySecret)
	}
	return c, nil
}

// Save writes the file only if it does not exist yet. Not safe across concurrent processes.
func (s *FileStore) Save(c Credentials) error {
	if c.APIKey == "" || c.SecretKey == "" {
		return fmt.Errorf("both API key and secret key are required")
	}
	if s.Exists() {
		return fmt.Errorf("credential file %s already exists", s.Path())
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.Dir, err)
	}
	content := fmt.Sprintf("%s=%s\n%s=%s\n", keyAPI, c.APIKey, keySecret, c.SecretKey)
	if err := os.WriteFile(s.Path(), []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.Path(), err)
	}
	return nil
}
