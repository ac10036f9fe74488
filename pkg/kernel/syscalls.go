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

package kernel

import (
	"petrel.dev/petrel/pkg/arch"
)

// SyscallFn is a syscall implementation. It receives the calling task and
// the six raw argument words; each handler reinterprets the words it uses
// through the arch.SyscallArgument accessors. It returns a non-negative
// result value, an optional control action, and an error. Exactly one of the
// result value and the error is meaningful: on a non-nil error the result
// value is ignored by the return-word encoding.
type SyscallFn func(t *Task, args arch.SyscallArguments) (uintptr, *SyscallControl, error)

// SyscallControl is returned by syscalls to control the fate of the calling
// task once the syscall itself completes.
type SyscallControl struct {
	// ignoreReturn is true if the return value should not be written back
	// to the caller, e.g. because the task will never resume userspace.
	ignoreReturn bool
}

// CtrlDoExit is returned by the exit family of syscalls: the caller must
// tear down the task instead of resuming it.
var CtrlDoExit = &SyscallControl{ignoreReturn: true}

// IgnoreReturn returns true if the return value of the syscall should not
// be written back to the caller.
func (c *SyscallControl) IgnoreReturn() bool {
	return c != nil && c.ignoreReturn
}

// Version is the system-wide version identification reported by uname.
type Version struct {
	// Sysname is the operating system name.
	Sysname string

	// Release is the release string.
	Release string

	// Version is the build string.
	Version string
}

// Stracer traces syscall execution. It is implemented by the strace package;
// the indirection keeps tracing optional and this package free of formatting
// concerns.
type Stracer interface {
	// SyscallEnter is called on syscall entry. The returned value is
	// passed to SyscallExit.
	SyscallEnter(t *Task, sysno uintptr, args arch.SyscallArguments) any

	// SyscallExit is called on syscall exit with the handler's verbatim
	// outcome.
	SyscallExit(context any, t *Task, sysno, rval uintptr, err error)
}

// SyscallTable is a map of the system's known syscalls to their
// implementations. The table is the single source of truth for which
// selector values exist: a selector missing from Table — including the holes
// between assigned numbers — is an unsupported call.
type SyscallTable struct {
	// Name identifies the ABI this table implements.
	Name string

	// Version is the version reported by uname.
	Version Version

	// Table is the collection of functions, keyed by syscall number.
	Table map[uintptr]SyscallFn

	// Stracer traces syscall execution if non-nil.
	Stracer Stracer
}

// Lookup returns the syscall implementation for sysno, or nil if sysno is
// not a known syscall.
func (s *SyscallTable) Lookup(sysno uintptr) SyscallFn {
	return s.Table[sysno]
}
