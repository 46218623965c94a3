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
	"strings"
	"testing"
)

func TestExplainTopicsCovered(t *testing.T) {
	topics := ExplainTopics()
	for _, want := range []string{"avl", "bst", "queue", "stack", "list", "heap"} {
		found := false
		for _, topic := range topics {
			if topic == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ExplainTopics() is missing %q: %v", want, topics)
		}
	}
}

func TestGetOrRenderExplainPage(t *testing.T) {
	c := NewExplainCache()

	page, err := GetOrRenderExplainPage(c, "avl")
	if err != nil {
		t.Fatalf("GetOrRenderExplainPage(avl) error: %v", err)
	}
	if !strings.Contains(page, "AVL") {
		t.Errorf("rendered page does not mention AVL:\n%s", page)
	}

	// topic names are case- and space-insensitive
	if _, err := GetOrRenderExplainPage(c, "  Heap "); err != nil {
		t.Errorf("GetOrRenderExplainPage(\"  Heap \") error: %v", err)
	}

	if _, err := GetOrRenderExplainPage(c, "btree"); err == nil {
		t.Error("unknown topic must return an error")
	}
}

func TestExplainPageIsCached(t *testing.T) {
	c := NewExplainCache()

	if _, err := GetOrRenderExplainPage(c, "stack"); err != nil {
		t.Fatalf("first render error: %v", err)
	}

	// Plant a sentinel; a second call must serve it instead of
	// re-rendering.
	CacheExplainPage(c, "stack", "cached sentinel")
	page, err := GetOrRenderExplainPage(c, "stack")
	if err != nil {
		t.Fatalf("second render error: %v", err)
	}
	if page != "cached sentinel" {
		t.Error("second call re-rendered instead of hitting the cache")
	}
}
