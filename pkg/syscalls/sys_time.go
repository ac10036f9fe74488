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

package syscalls

import (
	"encoding/binary"
	"time"

	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/kernel"
	"petrel.dev/petrel/pkg/usermem"
)

// Supported clock identifiers.
const (
	clockRealtime  = 0
	clockMonotonic = 1
)

// timespecLen is the wire size of a timespec: two little-endian 64-bit
// words, seconds then nanoseconds.
const timespecLen = 16

// monotonicBase anchors the monotonic clock. time.Since reads the runtime's
// monotonic reading embedded in it, so wall clock steps do not show through.
var monotonicBase = time.Now()

func putTimespec(b []byte, sec, nsec int64) {
	binary.LittleEndian.PutUint64(b, uint64(sec))
	binary.LittleEndian.PutUint64(b[8:], uint64(nsec))
}

// Gettime implements the gettime syscall.
func Gettime(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	clockID := args[0].Int()
	addr := args[1].Pointer()

	var ts [timespecLen]byte
	switch clockID {
	case clockRealtime:
		now := time.Now()
		putTimespec(ts[:], now.Unix(), int64(now.Nanosecond()))
	case clockMonotonic:
		d := time.Since(monotonicBase)
		putTimespec(ts[:], int64(d/time.Second), int64(d%time.Second))
	default:
		return 0, nil, kernelerr.EINVAL
	}

	if err := usermem.CopyOutBytes(t.Memory(), addr, ts[:]); err != nil {
		return 0, nil, err
	}
	return 0, nil, nil
}

// Sleep implements the sleep syscall, blocking the calling task for the
// duration described by the timespec at args[0].
func Sleep(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	addr := args[0].Pointer()

	ts, err := usermem.CopyInBytes(t.Memory(), addr, timespecLen)
	if err != nil {
		return 0, nil, err
	}
	sec := int64(binary.LittleEndian.Uint64(ts))
	nsec := int64(binary.LittleEndian.Uint64(ts[8:]))
	if sec < 0 || nsec < 0 || nsec >= int64(time.Second) {
		return 0, nil, kernelerr.EINVAL
	}

	time.Sleep(time.Duration(sec)*time.Second + time.Duration(nsec))
	return 0, nil, nil
}
