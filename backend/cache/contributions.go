package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"portfolio/backend/models"
)

// TTL is how long a cached contribution calendar is served without
// re-fetching. The whole entry is fresh or stale as a unit.
const TTL = 24 * time.Hour

const (
	// Normal reads cover the trailing 12 months.
	readWindowMonths = 12
	// Invalidation refetches only 3 months, as the original endpoint did.
	// Kept as-is; see DESIGN.md for the window mismatch discussion.
	invalidateWindowMonths = 3
)

// Fetcher is the upstream the cache refreshes from.
type Fetcher interface {
	Authenticated() bool
	FetchContributions(ctx context.Context, username string, from, to time.Time) (models.ContributionCalendar, error)
}

// ContributionCache is a two-tier cache for one user's contribution
// calendar: a single in-process slot backed by a JSON file on disk. The disk
// file is the authoritative tier; the memory slot covers the case where the
// file is missing or unreadable.
//
// Get never fails: every error path degrades to the best data available.
// Invalidate is the administrative counterpart and surfaces errors.
type ContributionCache struct {
	fetcher Fetcher
	dir     string
	logger  *log.Logger
	now     func() time.Time

	mu     sync.Mutex
	memory *models.CacheEntry

	group singleflight.Group
}

func New(fetcher Fetcher, dir string, logger *log.Logger) *ContributionCache {
	return &ContributionCache{
		fetcher: fetcher,
		dir:     dir,
		logger:  logger,
		now:     time.Now,
	}
}

func (cc *ContributionCache) filePath(username string) string {
	return filepath.Join(cc.dir, fmt.Sprintf("github-contributions-%s.json", username))
}

func (cc *ContributionCache) fresh(entry *models.CacheEntry) bool {
	return cc.now().UnixMilli()-entry.Timestamp < TTL.Milliseconds()
}

// read returns the candidate entry: the disk file if present and parseable,
// otherwise whatever the memory slot holds. May be nil.
func (cc *ContributionCache) read(username string) *models.CacheEntry {
	raw, err := os.ReadFile(cc.filePath(username))
	if err == nil {
		var entry models.CacheEntry
		if err := json.Unmarshal(raw, &entry); err == nil {
			return &entry
		}
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.memory
}

// write replaces both tiers with a new entry stamped now. The disk write is
// best-effort: a filesystem error must not mask a successful fetch.
func (cc *ContributionCache) write(username string, data models.ContributionCalendar) models.CacheEntry {
	entry := models.CacheEntry{
		Data:      data,
		Timestamp: cc.now().UnixMilli(),
	}

	cc.mu.Lock()
	cc.memory = &entry
	cc.mu.Unlock()

	raw, err := json.Marshal(entry)
	if err == nil {
		err = os.WriteFile(cc.filePath(username), raw, 0o644)
	}
	if err != nil {
		cc.logger.Printf("warning: failed to write contribution cache to file: %v", err)
	}

	return entry
}

// Get returns the freshest available contribution calendar for username.
// Fresh cache entries are served without an upstream call; a stale or
// missing entry triggers a synchronous fetch over the trailing 12 months.
// Every failure mode (no token, network error, malformed payload, unreadable
// disk) degrades to the last known data, or an empty calendar if there is
// none.
func (cc *ContributionCache) Get(ctx context.Context, username string) models.ContributionCalendar {
	cached := cc.read(username)
	if cached != nil && cc.fresh(cached) {
		return cached.Data
	}

	if !cc.fetcher.Authenticated() {
		cc.logger.Printf("warning: GITHUB_TOKEN not set, using cached or fallback data")
		if cached != nil {
			return cached.Data
		}
		return models.EmptyCalendar()
	}

	// Concurrent stale reads share one upstream call per username.
	v, err, _ := cc.group.Do(username, func() (interface{}, error) {
		if entry := cc.read(username); entry != nil && cc.fresh(entry) {
			return entry.Data, nil
		}
		to := cc.now()
		from := to.AddDate(0, -readWindowMonths, 0)
		data, err := cc.fetcher.FetchContributions(ctx, username, from, to)
		if err != nil {
			return nil, err
		}
		cc.write(username, data)
		return data, nil
	})
	if err != nil {
		cc.logger.Printf("warning: failed to fetch GitHub contributions: %v", err)
		if cached != nil {
			return cached.Data
		}
		return models.EmptyCalendar()
	}

	return v.(models.ContributionCalendar)
}

// Invalidate deletes the on-disk entry and refetches synchronously. Unlike
// Get it propagates upstream failures, since it backs an explicit operator
// action. The memory slot is refreshed along with the file so a read within
// the TTL serves the new data directly.
func (cc *ContributionCache) Invalidate(ctx context.Context, username string) (models.CacheEntry, error) {
	if err := os.Remove(cc.filePath(username)); err != nil && !os.IsNotExist(err) {
		cc.logger.Printf("warning: failed to remove contribution cache file: %v", err)
	}

	to := cc.now()
	from := to.AddDate(0, -invalidateWindowMonths, 0)
	data, err := cc.fetcher.FetchContributions(ctx, username, from, to)
	if err != nil {
		return models.CacheEntry{}, err
	}

	return cc.write(username, data), nil
}
