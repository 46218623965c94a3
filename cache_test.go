// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheExplainPageAndGetExplainPage(t *testing.T) {
	c := NewExplainCache()
	topic := "avl"
	rendered := "rendered AVL explainer"

	// A miss returns the empty string.
	if got := GetExplainPage(c, topic); got != "" {
		t.Errorf("GetExplainPage(%q) = %q; want empty string", topic, got)
	}

	CacheExplainPage(c, topic, rendered)

	if got := GetExplainPage(c, topic); got != rendered {
		t.Errorf("GetExplainPage(%q) = %q; want %q", topic, got, rendered)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	topic := "heap"
	rendered := "this entry should expire soon"

	c.Set(topic, rendered, 100*time.Millisecond)

	if got := GetExplainPage(c, topic); got != rendered {
		t.Errorf("GetExplainPage(%q) = %q; want %q", topic, got, rendered)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetExplainPage(c, topic); got != "" {
		t.Errorf("after expiration, GetExplainPage(%q) = %q; want empty string", topic, got)
	}
}
