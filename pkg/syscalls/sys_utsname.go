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

const (
	// utsFieldLen is the size of each utsname field, including the
	// terminating zero byte.
	utsFieldLen = 65

	// utsFields is the number of fields in a utsname struct: sysname,
	// nodename, release, version, machine, domainname.
	utsFields = 6

	// hostNameMax is the longest hostname sethostname accepts, not
	// counting a terminator.
	hostNameMax = utsFieldLen - 1
)

// Uname implements the uname syscall.
func Uname(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	version := t.SyscallTable().Version
	uts := t.UTSNamespace()

	var u [utsFields * utsFieldLen]byte
	for i, field := range []string{
		version.Sysname,
		uts.HostName(),
		version.Release,
		version.Version,
		"x86_64",
		uts.DomainName(),
	} {
		// Truncate to leave room for the terminating zero byte.
		if len(field) > utsFieldLen-1 {
			field = field[:utsFieldLen-1]
		}
		copy(u[i*utsFieldLen:], field)
	}

	if err := usermem.CopyOutBytes(t.Memory(), args[0].Pointer(), u[:]); err != nil {
		return 0, nil, err
	}
	return 0, nil, nil
}

// Gethostname implements the gethostname syscall.
func Gethostname(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	addr := args[0].Pointer()
	size := args[1].SizeT()

	name := t.UTSNamespace().HostName()
	if uint(len(name))+1 > size {
		return 0, nil, kernelerr.ENAMETOOLONG
	}
	if err := usermem.CopyOutBytes(t.Memory(), addr, append([]byte(name), 0)); err != nil {
		return 0, nil, err
	}
	return 0, nil, nil
}

// Sethostname implements the sethostname syscall.
func Sethostname(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
	addr := args[0].Pointer()
	size := args[1].Int()

	if size < 0 || size > hostNameMax {
		return 0, nil, kernelerr.EINVAL
	}
	name, err := usermem.CopyInBytes(t.Memory(), addr, int(size))
	if err != nil {
		return 0, nil, err
	}
	if !utf8.Valid(name) {
		return 0, nil, kernelerr.EINVAL
	}
	t.UTSNamespace().SetHostName(string(name))
	return 0, nil, nil
}
