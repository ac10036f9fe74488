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
	"petrel.dev/petrel/pkg/loader"
	"petrel.dev/petrel/pkg/usermem"
)

// maxExecPathLen caps the executable path of one exec call.
const maxExecPathLen = 4096

// Exec implements the argument marshaling half of the exec syscall: the
// path, argument and environment buffers are pulled into kernel-owned
// storage and fully validated before anything else happens, so a bad
// pointer fails the call without side effects. Actually replacing the
// task's image is owned by the program loader, which is not registered
// here; once arguments are collected the call reports unimplemented.
func Exec(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	pathAddr := args[0].Pointer()
	pathLen := args[1].SizeT()
	argvAddr := args[2].Pointer()
	argc := args[3].Int()
	envvAddr := args[4].Pointer()
	envc := args[5].Int()

	if pathLen > maxExecPathLen {
		return 0, nil, kernelerr.ENAMETOOLONG
	}
	path, err := usermem.CopyInBytes(t.Memory(), pathAddr, int(pathLen))
	if err != nil {
		return 0, nil, err
	}
	if !utf8.Valid(path) {
		return 0, nil, kernelerr.EINVAL
	}

	argv, err := loader.CollectExecArgs(t.Memory(), argvAddr, int(argc))
	if err != nil {
		return 0, nil, err
	}
	envv, err := loader.CollectExecArgs(t.Memory(), envvAddr, int(envc))
	if err != nil {
		return 0, nil, err
	}

	t.Infof("exec %q: %d args, %d env vars collected, no loader registered", path, argv.Len(), envv.Len())
	UnimplementedEvent(t)
	return 0, nil, kernelerr.ENOSYS
}
