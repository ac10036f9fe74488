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

// Package kernelerr contains syscall error codes exported as error interface
// pointers. Handlers return these values; comparing them is a pointer
// comparison, comparable in cost to unix.Errno constants.
package kernelerr

import (
	"fmt"

	"golang.org/x/sys/unix"
	"petrel.dev/petrel/pkg/abi/errno"
	"petrel.dev/petrel/pkg/errors"
)

const maxErrno uint32 = uint32(errno.EINPROGRESS) + 1

// The errors exposed to syscall handlers. Each is semantically identical to
// the unix.Errno of the same name, but the distinct pointer type keeps
// accidental mixing of host and guest error spaces from compiling.
var (
	noError *errors.Error = nil
	EPERM                 = errors.New(errno.EPERM, "operation not permitted")
	ENOENT                = errors.New(errno.ENOENT, "no such file or directory")
	ESRCH                 = errors.New(errno.ESRCH, "no such process")
	EINTR                 = errors.New(errno.EINTR, "interrupted system call")
	EIO                   = errors.New(errno.EIO, "I/O error")
	ENXIO                 = errors.New(errno.ENXIO, "no such device or address")
	E2BIG                 = errors.New(errno.E2BIG, "argument list too long")
	ENOEXEC               = errors.New(errno.ENOEXEC, "exec format error")
	EBADF                 = errors.New(errno.EBADF, "bad file number")
	ECHILD                = errors.New(errno.ECHILD, "no child processes")
	EAGAIN                = errors.New(errno.EAGAIN, "try again")
	ENOMEM                = errors.New(errno.ENOMEM, "out of memory")
	EACCES                = errors.New(errno.EACCES, "permission denied")
	EFAULT                = errors.New(errno.EFAULT, "bad address")
	EBUSY                 = errors.New(errno.EBUSY, "device or resource busy")
	EEXIST                = errors.New(errno.EEXIST, "file exists")
	ENODEV                = errors.New(errno.ENODEV, "no such device")
	ENOTDIR               = errors.New(errno.ENOTDIR, "not a directory")
	EISDIR                = errors.New(errno.EISDIR, "is a directory")
	EINVAL                = errors.New(errno.EINVAL, "invalid argument")
	ENFILE                = errors.New(errno.ENFILE, "file table overflow")
	EMFILE                = errors.New(errno.EMFILE, "too many open files")
	ENOTTY                = errors.New(errno.ENOTTY, "not a typewriter")
	EFBIG                 = errors.New(errno.EFBIG, "file too large")
	ENOSPC                = errors.New(errno.ENOSPC, "no space left on device")
	ESPIPE                = errors.New(errno.ESPIPE, "illegal seek")
	EROFS                 = errors.New(errno.EROFS, "read-only file system")
	EMLINK                = errors.New(errno.EMLINK, "too many links")
	EPIPE                 = errors.New(errno.EPIPE, "broken pipe")
	ERANGE                = errors.New(errno.ERANGE, "math result not representable")
	EDEADLK               = errors.New(errno.EDEADLK, "resource deadlock would occur")
	ENAMETOOLONG          = errors.New(errno.ENAMETOOLONG, "file name too long")
	ENOSYS                = errors.New(errno.ENOSYS, "invalid system call number")
	ENOTEMPTY             = errors.New(errno.ENOTEMPTY, "directory not empty")
	ELOOP                 = errors.New(errno.ELOOP, "too many symbolic links encountered")
	ENOMSG                = errors.New(errno.ENOMSG, "no message of desired type")
	ENODATA               = errors.New(errno.ENODATA, "no data available")
	ETIME                 = errors.New(errno.ETIME, "timer expired")
	EOVERFLOW             = errors.New(errno.EOVERFLOW, "value too large for defined data type")
	EILSEQ                = errors.New(errno.EILSEQ, "illegal byte sequence")
	ENOTSOCK              = errors.New(errno.ENOTSOCK, "socket operation on non-socket")
	EMSGSIZE              = errors.New(errno.EMSGSIZE, "message too long")
	EOPNOTSUPP            = errors.New(errno.EOPNOTSUPP, "operation not supported on transport endpoint")
	EADDRINUSE            = errors.New(errno.EADDRINUSE, "address already in use")
	ENETUNREACH           = errors.New(errno.ENETUNREACH, "network is unreachable")
	ECONNRESET            = errors.New(errno.ECONNRESET, "connection reset by peer")
	ENOTCONN              = errors.New(errno.ENOTCONN, "transport endpoint is not connected")
	ETIMEDOUT             = errors.New(errno.ETIMEDOUT, "connection timed out")
	ECONNREFUSED          = errors.New(errno.ECONNREFUSED, "connection refused")
	EINPROGRESS           = errors.New(errno.EINPROGRESS, "operation now in progress")
)

// errorSlice is a slice of all errors indexed by their errno value, used for
// fast errno-to-error lookup.
var errorSlice = func() []*errors.Error {
	s := make([]*errors.Error, maxErrno)
	for _, e := range []*errors.Error{
		EPERM, ENOENT, ESRCH, EINTR, EIO, ENXIO, E2BIG, ENOEXEC, EBADF,
		ECHILD, EAGAIN, ENOMEM, EACCES, EFAULT, EBUSY, EEXIST, ENODEV,
		ENOTDIR, EISDIR, EINVAL, ENFILE, EMFILE, ENOTTY, EFBIG, ENOSPC,
		ESPIPE, EROFS, EMLINK, EPIPE, ERANGE, EDEADLK, ENAMETOOLONG,
		ENOSYS, ENOTEMPTY, ELOOP, ENOMSG, ENODATA, ETIME, EOVERFLOW,
		EILSEQ, ENOTSOCK, EMSGSIZE, EOPNOTSUPP, EADDRINUSE, ENETUNREACH,
		ECONNRESET, ENOTCONN, ETIMEDOUT, ECONNREFUSED, EINPROGRESS,
	} {
		s[e.Errno()] = e
	}
	return s
}()

// ErrorFromErrno returns the error corresponding to e, or nil if e is
// NOERRNO or not a known errno value.
func ErrorFromErrno(e errno.Errno) *errors.Error {
	if uint32(e) < maxErrno {
		return errorSlice[e]
	}
	return nil
}

// ErrorFromUnix returns the *errors.Error equivalent of err. It panics if
// err has no equivalent, since that indicates an unaudited host error
// crossing into the guest error space.
func ErrorFromUnix(err unix.Errno) *errors.Error {
	if err == 0 {
		return noError
	}
	if e := ErrorFromErrno(errno.Errno(err)); e != nil {
		return e
	}
	panic(fmt.Sprintf("unknown host errno %d", int(err)))
}

// ToUnix converts e to the equivalent unix.Errno.
func ToUnix(e *errors.Error) unix.Errno {
	if e == noError {
		return 0
	}
	return unix.Errno(e.Errno())
}

// Equals compares a *errors.Error against an arbitrary error, tolerating the
// unix.Errno representation of the same code.
func Equals(e *errors.Error, err error) bool {
	if err == nil {
		return e == noError
	}
	if e2, ok := err.(*errors.Error); ok {
		return e == e2
	}
	if no, ok := err.(unix.Errno); ok {
		return e != noError && errno.Errno(no) == e.Errno()
	}
	return false
}
