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
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/structura/avl"
)

const (
	// Bloom filter sizing: ~10 bits per expected key with 5 hash
	// functions keeps the false-positive rate around 1%.
	bloomBitsPerKey = 10
	bloomHashes     = 5
)

// runBench builds an AVL tree from pseudo-random keys, validates every
// structural invariant, deletes half the keys, and validates again.
// The bloom filter screens duplicate draws: a negative test means the
// key is definitely fresh, so only the rare positive pays for a full
// tree search.
func runBench(config *Config) error {
	n := config.Bench.Keys
	rng := rand.New(rand.NewSource(config.Bench.Seed))
	filter := bloom.New(uint(n*bloomBitsPerKey), bloomHashes)
	tree := avl.New()
	keys := make([]int, 0, n)

	bar := progressbar.NewOptions(n,
		progressbar.OptionSetDescription("🌳 Inserting keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	insertStart := time.Now()
	for len(keys) < n {
		key := rng.Intn(n * 16)
		s := strconv.Itoa(key)
		if filter.TestString(s) && tree.Search(key) {
			continue // duplicate draw
		}
		filter.AddString(s)
		tree.Insert(key)
		keys = append(keys, key)
		bar.Add(1)
	}
	insertTook := time.Since(insertStart)
	bar.Finish()
	fmt.Println()

	if tree.Len() != n {
		return fmt.Errorf("tree holds %d keys after %d inserts", tree.Len(), n)
	}
	if err := tree.Check(); err != nil {
		return fmt.Errorf("invariant check after inserts: %v", err)
	}

	height := tree.Root().Height()
	bound := avl.MaxHeight(n)
	if height > bound {
		return fmt.Errorf("height %d exceeds the AVL bound %d for %d keys", height, bound, n)
	}

	searchStart := time.Now()
	for _, key := range keys {
		if !tree.Search(key) {
			return fmt.Errorf("key %d vanished", key)
		}
	}
	searchTook := time.Since(searchStart)

	deleteStart := time.Now()
	for _, key := range keys[:n/2] {
		tree.Delete(key)
	}
	deleteTook := time.Since(deleteStart)

	if err := tree.Check(); err != nil {
		return fmt.Errorf("invariant check after deletes: %v", err)
	}
	if tree.Len() != n-n/2 {
		return fmt.Errorf("tree holds %d keys after deleting %d of %d", tree.Len(), n/2, n)
	}
	for _, key := range keys[:n/2] {
		if tree.Search(key) {
			return fmt.Errorf("deleted key %d is still present", key)
		}
	}

	fmt.Printf("%s✅ All invariants hold.%s\n\n", Green, Reset)
	fmt.Printf("  keys inserted    %d in %v (%.0f ops/s)\n", n, insertTook.Round(time.Millisecond), float64(n)/insertTook.Seconds())
	fmt.Printf("  keys searched    %d in %v (%.0f ops/s)\n", n, searchTook.Round(time.Millisecond), float64(n)/searchTook.Seconds())
	fmt.Printf("  keys deleted     %d in %v (%.0f ops/s)\n", n/2, deleteTook.Round(time.Millisecond), float64(n/2)/deleteTook.Seconds())
	fmt.Printf("  final height     %d (AVL bound for %d keys: %d)\n", tree.Root().Height(), tree.Len(), avl.MaxHeight(tree.Len()))
	return nil
}
