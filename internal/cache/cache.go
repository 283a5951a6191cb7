package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ThandieOps/dirtree/internal/scanner"
	"github.com/ThandieOps/dirtree/internal/tree"
)

// SummaryRecord is the cached result of one tree run
type SummaryRecord struct {
	Root      string          `json:"root"`
	ScannedAt time.Time       `json:"scanned_at"`
	Options   scanner.Options `json:"options"`
	Summary   tree.Summary    `json:"summary"`
}

// Cache manages summary caching
type Cache struct {
	cacheDir string
}

// New creates a cache in the user cache directory
func New() (*Cache, error) {
	cacheDir, err := getCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache directory: %w", err)
	}
	return NewAt(cacheDir)
}

// NewAt creates a cache rooted at cacheDir
func NewAt(cacheDir string) (*Cache, error) {
	// Ensure cache directory exists
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Cache{
		cacheDir: cacheDir,
	}, nil
}

// getCacheDir returns the platform-appropriate cache directory
func getCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir unavailable
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, "dirtree", "cache"), nil
}

// SaveSummary stores the summary of a run over root, replacing any earlier one
func (c *Cache) SaveSummary(root string, opts scanner.Options, summary tree.Summary) error {
	record := SummaryRecord{
		Root:      root,
		ScannedAt: time.Now(),
		Options:   opts,
		Summary:   summary,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(c.getCacheFilePath(root), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// LoadSummary loads the most recent summary stored for root
func (c *Cache) LoadSummary(root string) (*SummaryRecord, error) {
	cacheFile := c.getCacheFilePath(root)

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no cached summary found for %s", root)
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var record SummaryRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache file: %w", err)
	}
	if record.Summary.ByDepth == nil {
		record.Summary.ByDepth = tree.DepthCounts{}
	}
	return &record, nil
}

// HasCachedResult checks if a cached summary exists for root
func (c *Cache) HasCachedResult(root string) bool {
	_, err := os.Stat(c.getCacheFilePath(root))
	return err == nil
}

// GetCacheFilePath returns the cache file path for root
func (c *Cache) GetCacheFilePath(root string) string {
	return c.getCacheFilePath(root)
}

// getCacheFilePath derives a stable file name from the root path
func (c *Cache) getCacheFilePath(root string) string {
	hash := sha256.Sum256([]byte(root))
	hashStr := hex.EncodeToString(hash[:])
	// First 16 hex characters are enough to keep roots apart
	return filepath.Join(c.cacheDir, fmt.Sprintf("summary_%s.json", hashStr[:16]))
}

// GetCacheDir returns the cache directory path
func (c *Cache) GetCacheDir() string {
	return c.cacheDir
}

// ClearCache removes all cached summaries
func (c *Cache) ClearCache() error {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			filePath := filepath.Join(c.cacheDir, entry.Name())
			if err := os.Remove(filePath); err != nil {
				return fmt.Errorf("failed to remove cache file %s: %w", filePath, err)
			}
		}
	}

	return nil
}
