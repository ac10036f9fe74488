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
	"petrel.dev/petrel/pkg/abi/sysno"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/kernel"
)

// Table returns the Petrel syscall table. Entries marked with
// ErrorWithEvent belong to subsystems implemented outside this package and
// report as unimplemented until those subsystems register their handlers.
func Table() *kernel.SyscallTable {
	return &kernel.SyscallTable{
		Name: "petrel",
		Version: kernel.Version{
			Sysname: "Petrel",
			Release: "0.2",
			Version: "#1 Mon Aug 18 09:14:02 UTC 2025",
		},
		Table: map[uintptr]kernel.SyscallFn{
			sysno.Exit:        Exit,
			sysno.Shutdown:    ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Fork:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Mmap:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Munmap:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Mprotect:    ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Exec:        Exec,
			sysno.Log:         Log,
			sysno.Uname:       Uname,
			sysno.Waitpid:     ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getpid:      Getpid,
			sysno.Getppid:     Getppid,
			sysno.Gettid:      Gettid,
			sysno.Gethostname: Gethostname,
			sysno.Sethostname: Sethostname,
			sysno.Info:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Sigaction:   ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Sigprocmask: ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Clone:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Kill:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Backtrace:   ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Trace:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Setpgid:     ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Setsid:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getpgid:     ErrorWithEvent(kernelerr.ENOSYS),

			sysno.Read:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Open:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Close:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Write:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getdents:    ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getcwd:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Chdir:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Mkdirat:     ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Rmdir:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Ioctl:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Seek:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Access:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Pipe:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Unlink:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Dup:         ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Dup2:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Fcntl:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Stat:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Fstat:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.ReadLink:    ErrorWithEvent(kernelerr.ENOSYS),
			sysno.EventFd:     ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Link:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Poll:        ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Rename:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.EpollCreate: ErrorWithEvent(kernelerr.ENOSYS),
			sysno.EpollCtl:    ErrorWithEvent(kernelerr.ENOSYS),
			sysno.EpollPwait:  ErrorWithEvent(kernelerr.ENOSYS),

			sysno.Socket:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Bind:         ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Connect:      ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Listen:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Accept:       ErrorWithEvent(kernelerr.ENOSYS),
			sysno.SockRecv:     ErrorWithEvent(kernelerr.ENOSYS),
			sysno.SockSend:     ErrorWithEvent(kernelerr.ENOSYS),
			sysno.SocketPair:   ErrorWithEvent(kernelerr.ENOSYS),
			sysno.SockShutdown: ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getpeername:  ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getsockname:  ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Setsockopt:   ErrorWithEvent(kernelerr.ENOSYS),

			sysno.Gettime:   Gettime,
			sysno.Sleep:     Sleep,
			sysno.Setitimer: ErrorWithEvent(kernelerr.ENOSYS),
			sysno.Getitimer: ErrorWithEvent(kernelerr.ENOSYS),

			sysno.IpcSend:         ErrorWithEvent(kernelerr.ENOSYS),
			sysno.IpcRecv:         ErrorWithEvent(kernelerr.ENOSYS),
			sysno.IpcDiscoverRoot: ErrorWithEvent(kernelerr.ENOSYS),
			sysno.IpcBecomeRoot:   ErrorWithEvent(kernelerr.ENOSYS),

			sysno.FutexWait: ErrorWithEvent(kernelerr.ENOSYS),
			sysno.FutexWake: ErrorWithEvent(kernelerr.ENOSYS),

			sysno.Debug: TagMemory,
		},
	}
}
