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

// Package errno holds the numeric error codes that syscall handlers may
// return to userspace. The values match the conventional Linux numbering so
// that unmodified C runtime wrappers can decode them.
package errno

// Errno is a syscall error number.
type Errno uint32

// The errno values exposed by the syscall boundary.
const (
	NOERRNO = iota
	EPERM
	ENOENT
	ESRCH
	EINTR
	EIO
	ENXIO
	E2BIG
	ENOEXEC
	EBADF
	ECHILD // 10
	EAGAIN
	ENOMEM
	EACCES
	EFAULT
	ENOTBLK
	EBUSY
	EEXIST
	EXDEV
	ENODEV
	ENOTDIR // 20
	EISDIR
	EINVAL
	ENFILE
	EMFILE
	ENOTTY
	ETXTBSY
	EFBIG
	ENOSPC
	ESPIPE
	EROFS // 30
	EMLINK
	EPIPE
	EDOM
	ERANGE
	EDEADLK
	ENAMETOOLONG
	ENOLCK
	ENOSYS
	ENOTEMPTY
	ELOOP // 40
)

// These values are not contiguous with the block above; the holes between
// them are not valid error numbers.
const (
	ENOMSG Errno = iota + 42
	EIDRM
)

const (
	ENODATA Errno = iota + 61
	ETIME
	ENOSR
)

const (
	EOVERFLOW Errno = 75
	EILSEQ    Errno = 84
	ENOTSOCK  Errno = 88
	EMSGSIZE  Errno = 90

	EOPNOTSUPP   Errno = 95
	EADDRINUSE   Errno = 98
	ENETUNREACH  Errno = 101
	ECONNRESET   Errno = 104
	ENOTCONN     Errno = 107
	ETIMEDOUT    Errno = 110
	ECONNREFUSED Errno = 111
	EINPROGRESS  Errno = 115
)
