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
	stderrors "errors"
	"fmt"

	"golang.org/x/sys/unix"
	"petrel.dev/petrel/pkg/abi/errno"
	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/errors"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/log"
)

// maxReturnErrno bounds the error band of the return-word encoding: words in
// [-maxReturnErrno, -1] carry an errno, everything else is a success value.
const maxReturnErrno = 4096

// ExecuteSyscall dispatches one syscall on behalf of t. It routes sysno to
// the handler registered in the task's syscall table, takes that handler's
// outcome verbatim, and folds it into the single return word delivered back
// to the caller. Selectors not present in the table are reported once at
// error severity and fail with ENOSYS; no handler runs for them.
//
// The call executes synchronously on the calling thread; if the handler
// blocks, control does not return here until it is done.
func (t *Task) ExecuteSyscall(sysno uintptr, args arch.SyscallArguments) (uintptr, *SyscallControl) {
	var straceContext any
	if t.table.Stracer != nil {
		straceContext = t.table.Stracer.SyscallEnter(t, sysno, args)
	}

	rval, ctrl, err := t.executeSyscall(sysno, args)

	if t.table.Stracer != nil {
		t.table.Stracer.SyscallExit(straceContext, t, sysno, rval, err)
	}
	return encodeReturn(rval, err), ctrl
}

func (t *Task) executeSyscall(sysno uintptr, args arch.SyscallArguments) (uintptr, *SyscallControl, error) {
	fn := t.table.Lookup(sysno)
	if fn == nil {
		log.Errorf("invalid syscall: %#x", sysno)
		return 0, nil, kernelerr.ENOSYS
	}
	return fn(t, args)
}

// encodeReturn folds a handler outcome into one return word. A nil error
// yields the result value unchanged; otherwise the word is the negated errno,
// which the caller's runtime wrapper reverses.
func encodeReturn(rval uintptr, err error) uintptr {
	if err == nil {
		return rval
	}
	return uintptr(-int64(ExtractErrno(err)))
}

// ErrnoFromReturn reverses encodeReturn. It returns the errno carried by
// word, with ok true iff word encodes an error.
func ErrnoFromReturn(word uintptr) (errno.Errno, bool) {
	if v := int64(word); v < 0 && v >= -maxReturnErrno {
		return errno.Errno(-v), true
	}
	return 0, false
}

// ExtractErrno extracts an integer error number from the error. It panics
// for error types that do not carry one: a handler returning such an error
// is a kernel bug, not a condition reportable to the caller.
func ExtractErrno(err error) int {
	switch err := err.(type) {
	case nil:
		return 0
	case unix.Errno:
		return int(err)
	case *errors.Error:
		return int(err.Errno())
	default:
		if wrapped := stderrors.Unwrap(err); wrapped != nil {
			return ExtractErrno(wrapped)
		}
		panic(fmt.Sprintf("unknown syscall error: %v", err))
	}
}
