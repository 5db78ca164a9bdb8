// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

// Package recency remembers which games were recently returned so the
// random selector can avoid repeats.
//
// Ids are grouped into buckets, one per selected year. Each bucket is a
// bounded set that drops its oldest id once full. Lookups never refresh an
// id, so eviction follows insertion order. State lives for the process only.
package recency

import (
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tomtom215/indiepick/internal/metrics"
)

// AllBucket is used when a request carries no year.
const AllBucket = "all"

// DefaultCapacity is the number of ids remembered per bucket.
const DefaultCapacity = 10

// BucketKey returns the bucket for a selected year, or AllBucket for 0.
func BucketKey(year int) string {
	if year <= 0 {
		return AllBucket
	}
	return strconv.Itoa(year)
}

// Tracker is a set of bounded per-bucket id sets. It is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	buckets  map[string]*lru.Cache[int, struct{}]
}

// New creates a tracker holding up to capacity ids per bucket.
// A capacity below 1 uses DefaultCapacity.
func New(capacity int) *Tracker {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Tracker{
		capacity: capacity,
		buckets:  make(map[string]*lru.Cache[int, struct{}]),
	}
}

// Capacity returns the per-bucket capacity.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// Contains reports whether id was recently recorded in bucket.
func (t *Tracker) Contains(bucket string, id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.buckets[bucket]
	return ok && set.Contains(id)
}

// Record adds id to bucket, evicting the oldest id when the bucket is full.
// Recording an id that is already present does not change its position.
func (t *Tracker) Record(bucket string, id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.buckets[bucket]
	if !ok {
		// lru.New only fails for a non-positive size
		set, _ = lru.New[int, struct{}](t.capacity)
		t.buckets[bucket] = set
		metrics.SetRecencyBuckets(len(t.buckets))
	}
	set.ContainsOrAdd(id, struct{}{})
}

// Recent returns the ids in bucket, oldest first.
func (t *Tracker) Recent(bucket string) []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.buckets[bucket]
	if !ok {
		return []int{}
	}
	return set.Keys()
}

// Buckets returns the number of buckets created so far.
func (t *Tracker) Buckets() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buckets)
}
