package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"commentgate/internal/domain"
	"commentgate/internal/usecases"
	"commentgate/pkg/log"

	"gopkg.in/yaml.v3"
)

const (
	defaultPathPrefix = "/posts/"
	defaultCurrency   = "usd"
	defaultProduct    = "Donation"
	reloadInterval    = 10 * time.Second
)

// Site is the deployment's site file. It is re-read when the file changes.
type Site struct {
	mu          sync.RWMutex
	site        string
	comments    domain.CommentSettings
	pathPrefix  string
	donations   usecases.DonationSettings
	lastModTime time.Time
	filePath    string

	stop chan struct{}
	once sync.Once
}

var _ usecases.SiteSettings = (*Site)(nil)

// rawSite represents the YAML structure.
type rawSite struct {
	Site     string `yaml:"site"`
	Comments struct {
		Repo       string `yaml:"repo"`
		RepoID     string `yaml:"repo_id"`
		CategoryID string `yaml:"category_id"`
		PathPrefix string `yaml:"path_prefix"`
	} `yaml:"comments"`
	Payments struct {
		ProductName       string `yaml:"product_name"`
		Description       string `yaml:"description"`
		CustomDescription string `yaml:"custom_description"`
		Currency          string `yaml:"currency"`
	} `yaml:"payments"`
}

// LoadSite loads the site file and polls it for changes until Close.
func LoadSite(filePath string) (*Site, error) {
	s := &Site{filePath: filePath, stop: make(chan struct{})}
	if err := s.reload(); err != nil {
		return nil, err
	}
	go s.watch(reloadInterval)
	return s, nil
}

// ParseSite builds a Site from YAML without watching any file.
func ParseSite(data []byte) (*Site, error) {
	s := &Site{stop: make(chan struct{})}
	if err := s.apply(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Close stops the watcher.
func (s *Site) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Site) reload() error {
	info, err := os.Stat(s.filePath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	if err := s.apply(data); err != nil {
		return err
	}
	s.mu.Lock()
	s.lastModTime = info.ModTime()
	s.mu.Unlock()
	return nil
}

func (s *Site) apply(data []byte) error {
	var raw rawSite
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	prefix := strings.TrimSpace(raw.Comments.PathPrefix)
	if prefix == "" {
		prefix = defaultPathPrefix
	}
	product := strings.TrimSpace(raw.Payments.ProductName)
	if product == "" {
		product = defaultProduct
	}
	currency := strings.ToLower(strings.TrimSpace(raw.Payments.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.site = strings.TrimRight(strings.TrimSpace(raw.Site), "/")
	s.comments = domain.CommentSettings{
		Repo:         strings.TrimSpace(raw.Comments.Repo),
		RepositoryID: strings.TrimSpace(raw.Comments.RepoID),
		CategoryID:   strings.TrimSpace(raw.Comments.CategoryID),
	}
	s.pathPrefix = prefix
	s.donations = usecases.DonationSettings{
		ProductName:       product,
		Description:       raw.Payments.Description,
		CustomDescription: raw.Payments.CustomDescription,
		Currency:          currency,
	}
	return nil
}

func (s *Site) watch(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}

		info, err := os.Stat(s.filePath)
		if err != nil {
			continue
		}
		s.mu.RLock()
		changed := info.ModTime().After(s.lastModTime)
		s.mu.RUnlock()
		if !changed {
			continue
		}
		if err := s.reload(); err != nil {
			log.GlobalWarn("site file reload failed, keeping previous settings", "path", s.filePath, "error", err)
			continue
		}
		log.GlobalInfo("site file reloaded", "path", s.filePath)
	}
}

// SiteURL returns the canonical base URL without trailing slash (thread-safe).
func (s *Site) SiteURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Comments returns the comment repository settings. ok is false when no
// repository is configured (thread-safe).
func (s *Site) Comments() (domain.CommentSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comments, s.comments.Repo != ""
}

// PathPrefix returns the path prefix joined with slugs to form content keys (thread-safe).
func (s *Site) PathPrefix() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pathPrefix
}

// Donations returns how donations are described to the payment provider (thread-safe).
func (s *Site) Donations() usecases.DonationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.donations
}
