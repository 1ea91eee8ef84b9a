// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Preference values are cached without expiry; writes go through the cache.
const cacheCleanupInterval = 10 * time.Minute

type cachedPreferenceStorage struct {
	next  PreferenceStorage
	cache *cache.Cache
}

// NewCachedPreferenceStorage decorates next with a read-through cache. Every
// write and delete is applied to next first and mirrored into the cache only
// on success, so the cache never holds a value next does not.
func NewCachedPreferenceStorage(next PreferenceStorage) PreferenceStorage {
	return &cachedPreferenceStorage{
		next:  next,
		cache: cache.New(cache.NoExpiration, cacheCleanupInterval),
	}
}

func (c *cachedPreferenceStorage) Get(ctx context.Context, key string) (string, error) {
	if v, ok := c.cache.Get(key); ok {
		return v.(string), nil
	}

	value, err := c.next.Get(ctx, key)
	if err != nil {
		return "", err
	}

	c.cache.Set(key, value, cache.NoExpiration)
	return value, nil
}

func (c *cachedPreferenceStorage) Set(ctx context.Context, key, value string) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		c.cache.Delete(key)
		return err
	}

	c.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (c *cachedPreferenceStorage) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return c.next.Delete(ctx, key)
}

func (c *cachedPreferenceStorage) Close() error {
	c.cache.Flush()
	return c.next.Close()
}
