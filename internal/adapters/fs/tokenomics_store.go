package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
)

// TokenomicsStore reads the token allocation table from a TOML file
type TokenomicsStore struct {
	path string
}

// NewTokenomicsStore creates a store for the configured allocation file.
// An empty path means the built-in distribution.
func NewTokenomicsStore(cfg *config.RuntimeConfig) *TokenomicsStore {
	return &TokenomicsStore{path: cfg.TokenomicsFile}
}

// Path returns the allocation file path, empty when none is configured
func (s *TokenomicsStore) Path() string {
	return s.path
}

// Load reads the allocation file, or returns the default distribution
func (s *TokenomicsStore) Load(ctx context.Context) (*domain.Tokenomics, error) {
	if s.path == "" {
		return domain.DefaultTokenomics(), nil
	}

	var t domain.Tokenomics
	md, err := toml.DecodeFile(s.path, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tokenomics file %s: %w", s.path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in tokenomics file %s: %v", s.path, undecoded)
	}

	if t.Symbol == "" {
		t.Symbol = domain.DefaultTokenomics().Symbol
	}
	return &t, nil
}

// Save writes t to path as TOML, creating parent directories
func (s *TokenomicsStore) Save(ctx context.Context, path string, t *domain.Tokenomics) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists", path)
		}
		return fmt.Errorf("failed to create tokenomics file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("failed to write tokenomics file: %w", err)
	}
	return nil
}

var _ usecase.TokenomicsSource = (*TokenomicsStore)(nil)
