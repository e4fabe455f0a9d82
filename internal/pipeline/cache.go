package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/todmy/req-analyzer/internal/config"
	"github.com/todmy/req-analyzer/pkg/models"
)

// Cache stores pipeline results by content key
type Cache interface {
	Get(key string) (*models.Result, bool)
	Add(key string, result *models.Result)
}

// GenerateCacheKey creates a cache key from document text
func GenerateCacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// LRUCache is a bounded in-memory Cache
type LRUCache struct {
	cache *lru.Cache[string, *models.Result]
}

// NewLRUCache creates a cache holding at most size results
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be greater than zero")
	}
	cache, err := lru.New[string, *models.Result](size)
	if err != nil {
		return nil, fmt.Errorf("init result cache: %w", err)
	}
	return &LRUCache{cache: cache}, nil
}

func (c *LRUCache) Get(key string) (*models.Result, bool) {
	return c.cache.Get(key)
}

func (c *LRUCache) Add(key string, result *models.Result) {
	c.cache.Add(key, result)
}

// Len returns the number of cached results
func (c *LRUCache) Len() int {
	return c.cache.Len()
}

// NoOpCache is a cache that doesn't cache anything
type NoOpCache struct{}

func (NoOpCache) Get(string) (*models.Result, bool) { return nil, false }

func (NoOpCache) Add(string, *models.Result) {}

// CachedProcessor wraps a Processor with a result cache. Cached results are
// copied and restamped, so every response carries its own analysis id and
// processing date.
type CachedProcessor struct {
	next  Processor
	cache Cache
	now   func() time.Time
}

// NewCachedProcessor creates a new cached processor
func NewCachedProcessor(next Processor, cache Cache) *CachedProcessor {
	if cache == nil {
		cache = NoOpCache{}
	}
	return &CachedProcessor{next: next, cache: cache, now: time.Now}
}

// Process returns a cached result for identical text or runs the pipeline.
func (c *CachedProcessor) Process(text, fileName string) (*models.Result, error) {
	key := GenerateCacheKey(text)
	if cached, ok := c.cache.Get(key); ok {
		result := cloneResult(cached)
		Stamp(result, fileName, c.now())
		return result, nil
	}

	result, err := c.next.Process(text, fileName)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, cloneResult(result))
	return result, nil
}

// cloneResult deep-copies a result so callers never share memory with the
// cache.
func cloneResult(r *models.Result) *models.Result {
	out := *r

	out.Requirements = make([]models.Requirement, len(r.Requirements))
	for i, req := range r.Requirements {
		req.Stakeholders = slices.Clone(req.Stakeholders)
		req.Dependencies = slices.Clone(req.Dependencies)
		for j, d := range req.Dependencies {
			if d.Similarity != nil {
				sim := *d.Similarity
				req.Dependencies[j].Similarity = &sim
			}
		}
		out.Requirements[i] = req
	}
	out.TestCases = slices.Clone(r.TestCases)

	if r.Analysis != nil {
		a := *r.Analysis
		a.DocumentMetadata.Keywords = slices.Clone(a.DocumentMetadata.Keywords)
		a.Statistics.ByType = maps.Clone(a.Statistics.ByType)
		a.Statistics.ByPriority = maps.Clone(a.Statistics.ByPriority)
		a.ByType = cloneIDs(a.ByType)
		a.ByPriority = cloneIDs(a.ByPriority)
		out.Analysis = &a
	}
	return &out
}

func cloneIDs(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// NewFromConfig builds the pipeline service, behind a result cache when the
// configured cache size is positive.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (Processor, error) {
	svc := NewService(Config{
		LightweightThreshold: cfg.LightweightThreshold,
		SimilarityThreshold:  cfg.SimilarityThreshold,
	}, logger)

	if cfg.CacheSize <= 0 {
		return svc, nil
	}

	cache, err := NewLRUCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return NewCachedProcessor(svc, cache), nil
}
