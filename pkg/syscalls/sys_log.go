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

// maxLogMessageLen caps one log syscall message.
const maxLogMessageLen = 4096

// Log implements the log syscall, which appends a caller-supplied message to
// the kernel log.
func Log(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	addr := args[0].Pointer()
	size := args[1].SizeT()

	if size > maxLogMessageLen {
		return 0, nil, kernelerr.EINVAL
	}
	msg, err := usermem.CopyInBytes(t.Memory(), addr, int(size))
	if err != nil {
		return 0, nil, err
	}
	if !utf8.Valid(msg) {
		return 0, nil, kernelerr.EINVAL
	}
	t.Infof("%s", msg)
	return 0, nil, nil
}
