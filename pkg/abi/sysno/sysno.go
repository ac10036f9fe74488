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

// Package sysno defines the syscall numbers understood by the Petrel kernel.
//
// Numbers are grouped by subsystem with unassigned holes between groups;
// values inside a hole are not valid syscalls and must be rejected by the
// dispatcher.
package sysno

// Process and thread lifecycle.
const (
	Exit uintptr = iota
	Shutdown
	Fork
	Mmap
	Munmap
	Mprotect
	Exec
	Log
	Uname
	Waitpid
	Getpid // 10
	Getppid
	Gettid
	Gethostname
	Sethostname
	Info
	Sigaction
	Sigprocmask
	Clone
	Kill
	Backtrace // 20
	Trace
	Setpgid
	Setsid
	Getpgid
)

// Filesystem.
const (
	Read uintptr = iota + 32
	Open
	Close
	Write
	Getdents
	Getcwd
	Chdir
	Mkdirat
	Rmdir
	Ioctl
	Seek // 42
	Access
	Pipe
	Unlink
	Dup
	Dup2
	Fcntl
	Stat
	Fstat
	ReadLink
	EventFd // 52
	Link
	Poll
	Rename
	EpollCreate
	EpollCtl
	EpollPwait
)

// Networking.
const (
	Socket uintptr = iota + 64
	Bind
	Connect
	Listen
	Accept
	SockRecv
	SockSend
	SocketPair
	SockShutdown
	Getpeername
	Getsockname // 74
	Setsockopt
)

// Time.
const (
	Gettime uintptr = iota + 96
	Sleep
	Setitimer
	Getitimer
)

// Inter-process messaging.
const (
	IpcSend uintptr = iota + 112
	IpcRecv
	IpcDiscoverRoot
	IpcBecomeRoot
)

// Futexes.
const (
	FutexWait uintptr = iota + 128
	FutexWake
)

// Debugging aids. These sit far away from the regular numbering space so
// that they are easy to strip from release builds.
const (
	Debug uintptr = 512
)
