package progress

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/2beens/liftlog/internal/cache"
	"github.com/2beens/liftlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

var _ Store = (*CachedStore)(nil)

// CachedStore keeps each user's exercise names in memory; the other reads go straight to the store.
// Invalidation only reaches this process, so the writer of workouts must share the instance.
type CachedStore struct {
	Store
	cache          cache.Cache
	ttl            time.Duration
	metricsManager *metrics.Manager

	// bumped on every invalidation; a store read that raced with one is not cached
	mu          sync.Mutex
	generations map[string]uint64
}

func NewCachedStore(store Store, c cache.Cache, ttl time.Duration, metricsManager *metrics.Manager) *CachedStore {
	return &CachedStore{
		Store:          store,
		cache:          c,
		ttl:            ttl,
		metricsManager: metricsManager,
		generations:    map[string]uint64{},
	}
}

func (cs *CachedStore) generation(userID string) uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.generations[userID]
}

func namesCacheKey(userID string) string {
	return "names::" + userID
}

func (cs *CachedStore) ListExerciseNames(ctx context.Context, userID string) ([]string, error) {
	key := namesCacheKey(userID)
	if namesBytes, found := cs.cache.Get(key); found {
		var names []string
		if err := json.Unmarshal(namesBytes, &names); err == nil {
			cs.countLookup("hit")
			return names, nil
		} else {
			log.Errorf("unmarshal cached exercise names for user %s: %s", userID, err)
		}
	}
	cs.countLookup("miss")

	genBefore := cs.generation(userID)
	names, err := cs.Store.ListExerciseNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	namesBytes, err := json.Marshal(names)
	if err != nil {
		log.Errorf("marshal exercise names for user %s: %s", userID, err)
		return names, nil
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.generations[userID] != genBefore {
		log.Tracef("exercise names for user %s invalidated during read, not caching", userID)
		return names, nil
	}
	if err := cs.cache.Set(key, namesBytes, cs.ttl); err != nil {
		log.Errorf("cache exercise names for user %s: %s", userID, err)
	}

	return names, nil
}

// InvalidateUser drops the cached names, e.g. after the user logged a new workout.
func (cs *CachedStore) InvalidateUser(userID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.generations[userID]++
	if cs.cache.Del(namesCacheKey(userID)) {
		log.Tracef("exercise names cache invalidated for user %s", userID)
	}
}

func (cs *CachedStore) countLookup(result string) {
	if cs.metricsManager == nil {
		return
	}
	cs.metricsManager.CounterNamesCacheLookups.WithLabelValues(result).Inc()
}
