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

// Package loader builds the initial stack image for a new process: it pulls
// argument and environment buffers out of caller memory into kernel-owned
// storage and later lays them out on the new stack.
package loader

import (
	"encoding/binary"

	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/usermem"
)

const (
	// vecEntrySize is the size of one caller-side vector entry: an
	// address word followed by a length word.
	vecEntrySize = 16

	// MaxTotalSize caps the combined size of all buffers collected for
	// one argument or environment list.
	MaxTotalSize = 2 * 1024 * 1024
)

// ExecArgs is an ordered sequence of kernel-owned buffers, positionally
// identical to the caller-described vector it was collected from.
type ExecArgs struct {
	args [][]byte
}

// Push appends a kernel-owned copy of arg.
func (e *ExecArgs) Push(arg []byte) {
	owned := make([]byte, len(arg))
	copy(owned, arg)
	e.args = append(e.args, owned)
}

// Extend appends a copy of every buffer in args, in order.
func (e *ExecArgs) Extend(args [][]byte) {
	for _, arg := range args {
		e.Push(arg)
	}
}

// Len returns the number of buffers.
func (e *ExecArgs) Len() int {
	return len(e.args)
}

// Arg returns the i'th buffer. The returned slice is kernel-owned and must
// not be written to.
func (e *ExecArgs) Arg(i int) []byte {
	return e.args[i]
}

// CollectExecArgs interprets addr as the start of count (address, length)
// pairs in the caller's memory and copies each described buffer into
// kernel-owned storage, preserving order.
//
// Every dereference goes through m; a vector entry or buffer outside the
// caller's accessible memory fails the whole collection with EFAULT and no
// partial result.
func CollectExecArgs(m usermem.IO, addr usermem.Addr, count int) (*ExecArgs, error) {
	if count < 0 || count > MaxTotalSize/vecEntrySize {
		return nil, kernelerr.EINVAL
	}
	vec, err := usermem.CopyInBytes(m, addr, count*vecEntrySize)
	if err != nil {
		return nil, err
	}

	var total uint64
	e := &ExecArgs{args: make([][]byte, 0, count)}
	for i := 0; i < count; i++ {
		entry := vec[i*vecEntrySize:]
		bufAddr := usermem.Addr(binary.LittleEndian.Uint64(entry))
		bufLen := binary.LittleEndian.Uint64(entry[8:])

		total += bufLen
		if bufLen > MaxTotalSize || total > MaxTotalSize {
			return nil, kernelerr.E2BIG
		}

		buf, err := usermem.CopyInBytes(m, bufAddr, int(bufLen))
		if err != nil {
			return nil, err
		}
		e.args = append(e.args, buf)
	}
	return e, nil
}

// PushOnStack lays the buffers out on stack, in order. For each buffer it
// pushes the raw bytes and then a single zero byte below them, and records
// the address of that zero byte as the entry's top. The returned addresses
// are in the same order as the buffers.
//
// Read forward, each returned address yields the zero sentinel followed by
// the buffer's exact bytes. A buffer with embedded zero bytes is copied
// faithfully, but a consumer treating the region as a C string will stop at
// the first zero it sees.
func (e *ExecArgs) PushOnStack(stack *arch.Stack) ([]usermem.Addr, error) {
	tops := make([]usermem.Addr, 0, len(e.args))

	for _, arg := range e.args {
		if _, err := stack.PushBytes(arg); err != nil {
			return nil, err
		}
		top, err := stack.PushBytes([]byte{0})
		if err != nil {
			return nil, err
		}
		tops = append(tops, top)
	}
	return tops, nil
}
