package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"comcigan-server/api/comcigan"
	"comcigan-server/dao/redis"
	"comcigan-server/util"
)

// refreshTimeout bounds one directory refresh run.
const refreshTimeout = 4 * time.Minute

// SchoolDirectoryRefresherService keeps the school search cache warm by
// re-running the searches for a fixed keyword list plus every keyword that
// already has a cached result.
type SchoolDirectoryRefresherService struct {
	schoolDao   *redis.RedisSchoolDAO
	comciganAPI comcigan.ComciganAPI
	keywords    []string

	mu   sync.Mutex
	cron *cron.Cron
}

// NewSchoolDirectoryRefresherService constructs a new refresher with dependencies.
func NewSchoolDirectoryRefresherService(
	schoolDao *redis.RedisSchoolDAO,
	comciganAPI comcigan.ComciganAPI,
	keywords []string,
) *SchoolDirectoryRefresherService {
	return &SchoolDirectoryRefresherService{
		schoolDao:   schoolDao,
		comciganAPI: comciganAPI,
		keywords:    keywords,
	}
}

// Start schedules RefreshDirectory with a standard five-field cron spec.
// Overlapping runs are skipped.
func (sr *SchoolDirectoryRefresherService) Start(spec string) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	if sr.cron != nil {
		return errors.New("school directory refresher already started")
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		log.Println("[SchoolDirectoryRefresherService] Running scheduled directory refresh.")
		if n, err := sr.RefreshDirectory(ctx); err != nil {
			log.Printf("[SchoolDirectoryRefresherService] RefreshDirectory returned error: %v", err)
		} else {
			log.Printf("[SchoolDirectoryRefresherService] RefreshDirectory refreshed %d keywords.", n)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	c.Start()
	sr.cron = c
	log.Printf("[SchoolDirectoryRefresherService] Started schedule=%q", spec)
	return nil
}

// Stop halts the schedule and waits for a running refresh to return.
func (sr *SchoolDirectoryRefresherService) Stop() {
	sr.mu.Lock()
	c := sr.cron
	sr.cron = nil
	sr.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	log.Println("[SchoolDirectoryRefresherService] Stopped.")
}

// RefreshDirectory searches every known keyword and rewrites its cache
// entry. Keywords that no longer match any school are evicted. It returns
// how many keywords were cached; per-keyword failures are logged and skipped.
func (sr *SchoolDirectoryRefresherService) RefreshDirectory(ctx context.Context) (int, error) {
	keywords := sr.collectKeywords()
	log.Printf("[SchoolDirectoryRefresherService] Refreshing %d keywords", len(keywords))

	refreshed := 0
	for _, kw := range keywords {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}

		schools, err := sr.comciganAPI.SearchSchools(ctx, kw)
		if errors.Is(err, comcigan.ErrNoSchoolFound) {
			log.Printf("[SchoolDirectoryRefresherService] No school for %q, removing cache", kw)
			if err := sr.schoolDao.DeleteSchools(kw); err != nil {
				log.Printf("[SchoolDirectoryRefresherService] Failed to delete stale entry for %q: %v", kw, err)
			}
			continue
		}
		if err != nil {
			log.Printf("[SchoolDirectoryRefresherService] Search failed for %q: %v", kw, err)
			continue
		}

		if err := sr.schoolDao.SetSchools(kw, schools); err != nil {
			log.Printf("[SchoolDirectoryRefresherService] SetSchools failed for %q: %v", kw, err)
			continue
		}
		util.LogSchoolsPartially(kw, schools)
		refreshed++
	}
	return refreshed, nil
}

// collectKeywords merges the configured keywords with the cached ones,
// dropping duplicates and blanks.
func (sr *SchoolDirectoryRefresherService) collectKeywords() []string {
	cached, err := sr.schoolDao.ListCachedKeywords()
	if err != nil {
		log.Printf("[SchoolDirectoryRefresherService] Error listing cached keywords: %v", err)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, kw := range append(append([]string{}, sr.keywords...), cached...) {
		norm := redis.NormalizeKeyword(kw)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}
