// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered explainer pages are static per binary, 30 minutes is plenty
	explainCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	explainCacheCleanup = 5 * time.Minute
)

// NewExplainCache creates a cache for rendered explainer markdown, so
// repeated lookups inside one session skip the glamour render.
func NewExplainCache() *cache.Cache {
	return cache.New(explainCacheExpiration, explainCacheCleanup)
}

func CacheExplainPage(c *cache.Cache, topic string, rendered string) {
	c.Set(topic, rendered, explainCacheExpiration)
}

func GetExplainPage(c *cache.Cache, topic string) string {
	val, ok := c.Get(topic)
	if !ok {
		return ""
	}
	return val.(string)
}
