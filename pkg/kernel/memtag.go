// Copyright 2025 The Petrel Authors.
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

package kernel

import (
	"petrel.dev/petrel/pkg/sync"
	"petrel.dev/petrel/pkg/usermem"
)

// MemoryTagMap associates address ranges in a task's address space with
// human-readable labels. It is a debugging aid with no bearing on memory
// management; ranges are never validated against actual mappings.
//
// Overlapping entries are permitted and are not merged. When a lookup
// matches more than one entry, the most recently inserted one wins.
type MemoryTagMap struct {
	// mu protects tags. It is held only for the duration of a single
	// insert or lookup.
	mu sync.Mutex

	// tags holds entries in insertion order.
	tags []memoryTag
}

type memoryTag struct {
	ar    usermem.AddrRange
	label string
}

// Insert adds a tag for ar. Existing overlapping entries are left in place.
func (mt *MemoryTagMap) Insert(ar usermem.AddrRange, label string) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.tags = append(mt.tags, memoryTag{ar: ar, label: label})
}

// Lookup returns the label of the newest entry whose range contains addr.
func (mt *MemoryTagMap) Lookup(addr usermem.Addr) (string, bool) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for i := len(mt.tags) - 1; i >= 0; i-- {
		if mt.tags[i].ar.Contains(addr) {
			return mt.tags[i].label, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (mt *MemoryTagMap) Len() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return len(mt.tags)
}
