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

package strace

import (
	"petrel.dev/petrel/pkg/abi/sysno"
)

// Petrel maps the Petrel syscall numbers to their names and argument
// formats.
var Petrel = SyscallMap{
	sysno.Exit:        makeSyscallInfo("exit", Dec),
	sysno.Shutdown:    makeSyscallInfo("shutdown"),
	sysno.Fork:        makeSyscallInfo("fork"),
	sysno.Mmap:        makeSyscallInfo("mmap", Hex, Hex, Hex, Hex, FD, Hex),
	sysno.Munmap:      makeSyscallInfo("munmap", Hex, Hex),
	sysno.Mprotect:    makeSyscallInfo("mprotect", Hex, Hex, Hex),
	sysno.Exec:        makeSyscallInfo("exec", Hex, Dec, Hex, Dec, Hex, Dec),
	sysno.Log:         makeSyscallInfo("log", Hex, Dec),
	sysno.Uname:       makeSyscallInfo("uname", Hex),
	sysno.Waitpid:     makeSyscallInfo("waitpid", Dec, Hex, Hex),
	sysno.Getpid:      makeSyscallInfo("getpid"),
	sysno.Getppid:     makeSyscallInfo("getppid"),
	sysno.Gettid:      makeSyscallInfo("gettid"),
	sysno.Gethostname: makeSyscallInfo("gethostname", Hex, Dec),
	sysno.Sethostname: makeSyscallInfo("sethostname", Hex, Dec),
	sysno.Info:        makeSyscallInfo("info", Hex),
	sysno.Sigaction:   makeSyscallInfo("sigaction", Dec, Hex, Hex, Hex),
	sysno.Sigprocmask: makeSyscallInfo("sigprocmask", Dec, Hex, Hex),
	sysno.Clone:       makeSyscallInfo("clone", Hex, Hex),
	sysno.Kill:        makeSyscallInfo("kill", Dec, Dec),
	sysno.Backtrace:   makeSyscallInfo("backtrace"),
	sysno.Trace:       makeSyscallInfo("trace"),
	sysno.Setpgid:     makeSyscallInfo("setpgid", Dec, Dec),
	sysno.Setsid:      makeSyscallInfo("setsid"),
	sysno.Getpgid:     makeSyscallInfo("getpgid", Dec),

	sysno.Read:        makeSyscallInfo("read", FD, Hex, Dec),
	sysno.Open:        makeSyscallInfo("open", Hex, Dec, Hex, Oct),
	sysno.Close:       makeSyscallInfo("close", FD),
	sysno.Write:       makeSyscallInfo("write", FD, Hex, Dec),
	sysno.Getdents:    makeSyscallInfo("getdents", FD, Hex, Dec),
	sysno.Getcwd:      makeSyscallInfo("getcwd", Hex, Dec),
	sysno.Chdir:       makeSyscallInfo("chdir", Hex, Dec),
	sysno.Mkdirat:     makeSyscallInfo("mkdirat", FD, Hex, Dec),
	sysno.Rmdir:       makeSyscallInfo("rmdir", Hex, Dec),
	sysno.Ioctl:       makeSyscallInfo("ioctl", FD, Hex, Hex),
	sysno.Seek:        makeSyscallInfo("seek", FD, Dec, Dec),
	sysno.Access:      makeSyscallInfo("access", FD, Hex, Dec, Hex, Hex),
	sysno.Pipe:        makeSyscallInfo("pipe", Hex, Hex),
	sysno.Unlink:      makeSyscallInfo("unlink", FD, Hex, Dec, Hex),
	sysno.Dup:         makeSyscallInfo("dup", FD, Hex),
	sysno.Dup2:        makeSyscallInfo("dup2", FD, FD, Hex),
	sysno.Fcntl:       makeSyscallInfo("fcntl", FD, Dec, Hex),
	sysno.Stat:        makeSyscallInfo("stat", Hex, Dec, Hex),
	sysno.Fstat:       makeSyscallInfo("fstat", FD, Hex),
	sysno.ReadLink:    makeSyscallInfo("read_link", Hex, Dec, Hex, Dec),
	sysno.EventFd:     makeSyscallInfo("event_fd", Dec, Hex),
	sysno.Link:        makeSyscallInfo("link", Hex, Dec, Hex, Dec),
	sysno.Poll:        makeSyscallInfo("poll", Hex, Dec, Dec, Hex),
	sysno.Rename:      makeSyscallInfo("rename", Hex, Dec, Hex, Dec),
	sysno.EpollCreate: makeSyscallInfo("epoll_create", Hex),
	sysno.EpollCtl:    makeSyscallInfo("epoll_ctl", FD, Dec, FD, Hex),
	sysno.EpollPwait:  makeSyscallInfo("epoll_pwait", FD, Hex, Dec, Dec, Hex),

	sysno.Socket:       makeSyscallInfo("socket", Dec, Dec, Dec),
	sysno.Bind:         makeSyscallInfo("bind", FD, Hex, Dec),
	sysno.Connect:      makeSyscallInfo("connect", FD, Hex, Dec),
	sysno.Listen:       makeSyscallInfo("listen", FD, Dec),
	sysno.Accept:       makeSyscallInfo("accept", FD, Hex, Hex),
	sysno.SockRecv:     makeSyscallInfo("sock_recv", FD, Hex, Hex),
	sysno.SockSend:     makeSyscallInfo("sock_send", FD, Hex, Hex),
	sysno.SocketPair:   makeSyscallInfo("socket_pair", Dec, Dec, Dec, Hex),
	sysno.SockShutdown: makeSyscallInfo("sock_shutdown", FD, Dec),
	sysno.Getpeername:  makeSyscallInfo("get_peername", FD, Hex, Hex),
	sysno.Getsockname:  makeSyscallInfo("get_sockname", FD, Hex, Hex),
	sysno.Setsockopt:   makeSyscallInfo("setsockopt", FD, Dec, Dec, Hex, Dec),

	sysno.Gettime:   makeSyscallInfo("gettime", Dec, Hex),
	sysno.Sleep:     makeSyscallInfo("sleep", Hex),
	sysno.Setitimer: makeSyscallInfo("setitimer", Dec, Hex, Hex),
	sysno.Getitimer: makeSyscallInfo("getitimer", Dec, Hex),

	sysno.IpcSend:         makeSyscallInfo("ipc_send", Dec, Hex, Dec),
	sysno.IpcRecv:         makeSyscallInfo("ipc_recv", Hex, Hex, Dec, Hex),
	sysno.IpcDiscoverRoot: makeSyscallInfo("ipc_discover_root"),
	sysno.IpcBecomeRoot:   makeSyscallInfo("ipc_become_root"),

	sysno.FutexWait: makeSyscallInfo("futex_wait", Hex, Hex, Hex),
	sysno.FutexWake: makeSyscallInfo("futex_wake", Hex),

	sysno.Debug: makeSyscallInfo("debug", Hex, Hex, Hex, Dec),
}
