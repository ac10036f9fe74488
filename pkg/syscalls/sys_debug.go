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
	"unicode/utf8"

	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/kernel"
	"petrel.dev/petrel/pkg/usermem"
)

// maxMemoryTagLen caps the label of one memory tag.
const maxMemoryTagLen = 256

// TagMemory implements the debug syscall. It labels the address range
// [addr, addr+size) in the calling task's tag map so that fault reports and
// debuggers can name the region. Tagging neither checks nor changes what is
// actually mapped there, and ranges tagged earlier stay in place even when
// the new range overlaps them.
func TagMemory(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	addr := args[0].Pointer()
	size := args[1].SizeT()
	labelAddr := args[2].Pointer()
	labelLen := args[3].SizeT()

	if labelLen > maxMemoryTagLen {
		return 0, nil, kernelerr.ENAMETOOLONG
	}
	label, err := usermem.CopyInBytes(t.Memory(), labelAddr, int(labelLen))
	if err != nil {
		return 0, nil, err
	}
	if !utf8.Valid(label) {
		return 0, nil, kernelerr.EINVAL
	}

	ar, ok := addr.ToRange(uint64(size))
	if !ok {
		return 0, nil, kernelerr.EINVAL
	}

	t.MemoryTags().Insert(ar, string(label))
	return 0, nil, nil
}
