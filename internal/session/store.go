// Package session keeps the results of each assessment session in memory.
// Records are keyed per session and insurance line; a later write for the
// same key replaces the earlier one.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"risk-engine/internal/model"
)

const claimKey = "claim"

// Store implements session storage on top of allegro/bigcache. Every write
// refreshes all records of its session, so a session expires as a whole once
// it has seen no write for the TTL given to NewStore. Entries past the TTL
// read as absent even before bigcache cleans them up.
type Store struct {
	mu    sync.Mutex
	cache *bigcache.BigCache
}

// NewStore creates a store whose entries expire after ttl. maxMB caps the
// memory used by the cache.
func NewStore(ttl time.Duration, maxMB int) (*Store, error) {
	config := bigcache.DefaultConfig(ttl)
	config.HardMaxCacheSize = maxMB
	config.CleanWindow = time.Minute
	config.Verbose = false

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, errors.Wrap(err, "init bigcache")
	}
	return &Store{cache: cache}, nil
}

func key(sessionID, suffix string) string {
	return sessionID + "/" + suffix
}

// Put stores the assessment under its insurance type and returns the record
// it replaced, if any.
func (s *Store) Put(ctx context.Context, sessionID string, a model.Assessment) (*model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(sessionID, string(a.InsuranceType))
	var prev model.Assessment
	found, err := s.load(k, &prev)
	if err != nil {
		return nil, err
	}
	if err := s.store(k, a); err != nil {
		return nil, err
	}
	if err := s.touch(sessionID, k); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &prev, nil
}

// Get returns the stored assessment for one line, or nil when the line has not
// been assessed in this session.
func (s *Store) Get(ctx context.Context, sessionID string, t model.InsuranceType) (*model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var a model.Assessment
	found, err := s.load(key(sessionID, string(t)), &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

// Assessments returns every completed line of the session.
func (s *Store) Assessments(ctx context.Context, sessionID string) (map[model.InsuranceType]model.Assessment, error) {
	out := make(map[model.InsuranceType]model.Assessment, len(model.AllInsuranceTypes))
	for _, t := range model.AllInsuranceTypes {
		a, err := s.Get(ctx, sessionID, t)
		if err != nil {
			return nil, err
		}
		if a != nil {
			out[t] = *a
		}
	}
	return out, nil
}

// PutClaim replaces the session's latest claim review.
func (s *Store) PutClaim(ctx context.Context, sessionID string, r model.ClaimReview) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(sessionID, claimKey)
	if err := s.store(k, r); err != nil {
		return err
	}
	return s.touch(sessionID, k)
}

// LatestClaim returns the session's most recent claim review, or nil.
func (s *Store) LatestClaim(ctx context.Context, sessionID string) (*model.ClaimReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var r model.ClaimReview
	found, err := s.load(key(sessionID, claimKey), &r)
	if err != nil || !found {
		return nil, err
	}
	return &r, nil
}

// Reset drops every record of the session.
func (s *Store) Reset(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range sessionKeys(sessionID) {
		if err := s.cache.Delete(k); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
			return errors.Wrapf(err, "delete %s", k)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.cache.Close()
}

func sessionKeys(sessionID string) []string {
	keys := make([]string, 0, len(model.AllInsuranceTypes)+1)
	for _, t := range model.AllInsuranceTypes {
		keys = append(keys, key(sessionID, string(t)))
	}
	return append(keys, key(sessionID, claimKey))
}

// touch rewrites the live records of the session other than written, which
// restarts their TTL. Callers hold s.mu.
func (s *Store) touch(sessionID, written string) error {
	for _, k := range sessionKeys(sessionID) {
		if k == written {
			continue
		}
		data, ok, err := s.raw(k)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.cache.Set(k, data); err != nil {
			return errors.Wrapf(err, "refresh %s", k)
		}
	}
	return nil
}

// raw returns the stored bytes of k. Expired entries are reported as absent.
func (s *Store) raw(k string) ([]byte, bool, error) {
	data, resp, err := s.cache.GetWithInfo(k)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get %s", k)
	}
	if resp.EntryStatus == bigcache.Expired {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *Store) load(k string, v any) (bool, error) {
	data, ok, err := s.raw(k)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "decode %s", k)
	}
	return true, nil
}

func (s *Store) store(k string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", k)
	}
	return errors.Wrapf(s.cache.Set(k, data), "set %s", k)
}
