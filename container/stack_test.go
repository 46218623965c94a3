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

package container

import "testing"

func TestStackLIFOOrder(t *testing.T) {
	var s Stack[string]

	if !s.IsEmpty() {
		t.Fatal("zero-value stack must be empty")
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on an empty stack must report false")
	}

	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}

	if top, _ := s.Peek(); top != "c" {
		t.Errorf("Peek() = %q, want \"c\"", top)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after Peek, want 3", s.Len())
	}

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %q, %v; want %q, true", got, ok, want)
		}
	}
}

// Pushing far past the initial backing array exercises the amortized
// growth path.
func TestStackGrowth(t *testing.T) {
	var s Stack[int]
	const n = 10000

	for i := 0; i < n; i++ {
		s.Push(i)
	}
	if s.Len() != n {
		t.Fatalf("Len() = %d, want %d", s.Len(), n)
	}
	for i := n - 1; i >= 0; i-- {
		got, ok := s.Pop()
		if !ok || got != i {
			t.Fatalf("Pop() = %d, %v; want %d, true", got, ok, i)
		}
	}
}
