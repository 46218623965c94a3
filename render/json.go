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

package render

import "encoding/json"

// JSONRenderer emits the tree as nested JSON objects.
type JSONRenderer struct{}

type jsonNode struct {
	Key    int       `json:"key"`
	Height int       `json:"height"`
	Left   *jsonNode `json:"left,omitempty"`
	Right  *jsonNode `json:"right,omitempty"`
}

func (r *JSONRenderer) Format() string { return "json" }

func (r *JSONRenderer) Render(root *Snapshot) (string, error) {
	out, err := json.MarshalIndent(toJSONNode(root), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func toJSONNode(node *Snapshot) *jsonNode {
	if node == nil {
		return nil
	}
	return &jsonNode{
		Key:    node.Key,
		Height: node.Height,
		Left:   toJSONNode(node.Left),
		Right:  toJSONNode(node.Right),
	}
}
