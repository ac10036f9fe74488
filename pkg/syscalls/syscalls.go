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

// Package syscalls is the interface from the application to the kernel: it
// holds the Petrel syscall table and its handler implementations.
//
// Handlers for subsystems that live elsewhere (filesystem, networking,
// scheduling) are registered as stubs here; the stubs provide the interface,
// not the implementation, which keeps the table exhaustive while those
// subsystems are wired up.
package syscalls

import (
	"time"

	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/kernel"
	"petrel.dev/petrel/pkg/log"
)

// Error returns a syscall handler that will always give the passed error.
func Error(err error) kernel.SyscallFn {
	return func(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
		return 0, nil, err
	}
}

// ErrorWithEvent gives a syscall function that reports an unimplemented
// syscall event and returns the passed error.
func ErrorWithEvent(err error) kernel.SyscallFn {
	return func(t *kernel.Task, args arch.SyscallArguments) (uintptr, *kernel.SyscallControl, error) {
		UnimplementedEvent(t)
		return 0, nil, err
	}
}

// unimplementedLogger rate-limits unimplemented syscall reports so that a
// caller retrying in a loop cannot flood the log.
var unimplementedLogger = log.BasicRateLimitedLogger(5 * time.Minute)

// UnimplementedEvent reports that a task invoked a known but unimplemented
// syscall.
func UnimplementedEvent(t *kernel.Task) {
	unimplementedLogger.Infof("[% 4d] unimplemented syscall", t.ThreadID())
}
