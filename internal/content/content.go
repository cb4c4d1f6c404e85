package content

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/sohagbhuiyan/portfolio-api/internal/models"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/slug"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var embeddedProfile []byte

// Store holds the profile document in memory. It is written once by
// Initialize and read concurrently afterwards.
type Store struct {
	overrideFile string

	mu      sync.RWMutex
	profile *models.Profile
	ready   bool
}

// NewStore creates a store. When overrideFile is non-empty it is read
// instead of the embedded document.
func NewStore(overrideFile string) *Store {
	return &Store{overrideFile: overrideFile}
}

// Initialize parses the profile document. Should be called during
// application startup before accepting requests.
func (s *Store) Initialize() error {
	logger.Info("Loading profile content...")

	raw := embeddedProfile
	source := "embedded"
	if s.overrideFile != "" {
		data, err := os.ReadFile(s.overrideFile)
		if err != nil {
			return fmt.Errorf("failed to read content file %s: %w", s.overrideFile, err)
		}
		raw = data
		source = s.overrideFile
	}

	profile, err := Parse(raw)
	if err != nil {
		logger.Error("Failed to load profile content", zap.String("source", source), zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.ready = true
	s.mu.Unlock()

	logger.Info("Profile content loaded",
		zap.String("source", source),
		zap.Int("experiences", len(profile.Experiences)),
		zap.Int("projects", len(profile.Projects)))
	return nil
}

// Parse decodes a profile document and checks its required fields.
// Projects without an id get one derived from their title.
func Parse(raw []byte) (*models.Profile, error) {
	var profile models.Profile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile content: %w", err)
	}
	if profile.Name == "" {
		return nil, fmt.Errorf("profile content: name is required")
	}

	seen := make(map[string]bool, len(profile.Projects))
	for i := range profile.Projects {
		p := &profile.Projects[i]
		if p.ID == "" {
			p.ID = slug.Make(p.Title)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("profile content: project %d has neither id nor title", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("profile content: duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return &profile, nil
}

// IsReady returns true once the document has been loaded
func (s *Store) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Profile returns the loaded document, or nil before Initialize.
func (s *Store) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}
