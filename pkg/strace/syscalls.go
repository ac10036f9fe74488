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
	"fmt"

	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/kernel"
)

// FormatSpecifier values describe how an individual syscall argument should
// be formatted.
type FormatSpecifier int

// Valid FormatSpecifiers.
const (
	// Hex is just a hexadecimal number.
	Hex FormatSpecifier = iota

	// Dec is just a decimal number.
	Dec

	// Oct is just an octal number.
	Oct

	// FD is a file descriptor.
	FD
)

// defaultFormat is the syscall argument format to use if the actual format
// is not known. It formats all six arguments as hex.
var defaultFormat = []FormatSpecifier{Hex, Hex, Hex, Hex, Hex, Hex}

// SyscallInfo captures the name and printing format of a syscall.
type SyscallInfo struct {
	// name is the name of the syscall.
	name string

	// format contains the format specifiers for each argument.
	//
	// Syscalls can have up to six arguments. Arguments without a
	// corresponding entry in format will not be printed.
	format []FormatSpecifier
}

// makeSyscallInfo returns a SyscallInfo for a syscall.
func makeSyscallInfo(name string, f ...FormatSpecifier) SyscallInfo {
	return SyscallInfo{name: name, format: f}
}

// SyscallMap maps syscalls into names and printing formats.
type SyscallMap map[uintptr]SyscallInfo

var _ kernel.Stracer = (SyscallMap)(nil)

// Name returns the name of the syscall, or a synthetic one if sysno is not
// in the map.
func (m SyscallMap) Name(sysno uintptr) string {
	if info, ok := m[sysno]; ok {
		return info.name
	}
	return fmt.Sprintf("syscall_%d", sysno)
}

// SyscallEnter implements kernel.Stracer.SyscallEnter.
func (m SyscallMap) SyscallEnter(t *kernel.Task, sysno uintptr, args arch.SyscallArguments) any {
	info, ok := m[sysno]
	if !ok {
		info = SyscallInfo{
			name:   fmt.Sprintf("syscall_%d", sysno),
			format: defaultFormat,
		}
	}

	r := NewRecord(info.name)
	for i, f := range info.format {
		if i >= len(args) {
			break
		}
		switch f {
		case Dec:
			r.Arg(args[i].Int64())
		case Oct:
			r.args = append(r.args, fmt.Sprintf("%#o", args[i].Uint64()))
		case FD:
			r.Arg(args[i].Int())
		default:
			r.Hex(args[i].Uint64())
		}
	}
	return r
}

// SyscallExit implements kernel.Stracer.SyscallExit.
func (m SyscallMap) SyscallExit(context any, t *kernel.Task, sysno, rval uintptr, err error) {
	context.(*Record).Done(rval, err)
}
