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

package arch

import (
	"encoding/binary"

	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/usermem"
)

// Stack is a simple wrapper around a usermem.IO and an address. Stack
// implements the downward-growing push model used when building a new
// process image: Bottom is the current top-of-stack cursor and decreases
// with every push.
type Stack struct {
	// IO is the destination memory.
	IO usermem.IO

	// Bottom is the current lowest address in use. Pushes move it down.
	Bottom usermem.Addr
}

// wordSize is the width in bytes of one stack word.
const wordSize = 8

// PushBytes pushes b onto the stack and returns the new top, which is the
// address of the first byte of b. On error, the stack cursor is unchanged.
func (s *Stack) PushBytes(b []byte) (usermem.Addr, error) {
	if uintptr(s.Bottom) < uintptr(len(b)) {
		return 0, kernelerr.EFAULT
	}
	bottom := s.Bottom - usermem.Addr(len(b))
	if _, err := s.IO.CopyOut(bottom, b); err != nil {
		return 0, err
	}
	s.Bottom = bottom
	return s.Bottom, nil
}

// PushUint64 pushes one little-endian 64-bit word.
func (s *Stack) PushUint64(v uint64) (usermem.Addr, error) {
	var b [wordSize]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return s.PushBytes(b[:])
}

// PushAddrs pushes a null-terminated pointer table referencing addrs, in
// order. It returns the address of the table, i.e. of the word holding
// addrs[0].
//
// The stack grows down, so the terminator is pushed first.
func (s *Stack) PushAddrs(addrs []usermem.Addr) (usermem.Addr, error) {
	if _, err := s.PushUint64(0); err != nil {
		return 0, err
	}
	for i := len(addrs) - 1; i >= 0; i-- {
		if _, err := s.PushUint64(uint64(addrs[i])); err != nil {
			return 0, err
		}
	}
	return s.Bottom, nil
}

// Align aligns the stack cursor down to a multiple of offset, which must be
// a power of 2.
func (s *Stack) Align(offset int) {
	s.Bottom = s.Bottom.RoundDown(uint(offset))
}
