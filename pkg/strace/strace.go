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

// Package strace implements the per-call trace stream: one line per syscall
// carrying the call name, its rendered arguments, and its outcome.
package strace

import (
	"fmt"
	"strings"

	"petrel.dev/petrel/pkg/kernel"
	"petrel.dev/petrel/pkg/log"
)

// ANSI escapes coloring the call name by outcome.
const (
	colorGreen = "\x1b[1;32m"
	colorRed   = "\x1b[1;31m"
	colorReset = "\x1b[0m"
)

// Record accumulates one syscall invocation for the trace stream. Arguments
// are rendered to strings as they are appended, not when the record is
// emitted. A Record carries no outcome; the outcome is supplied to Done,
// which is the only way to emit, so an outcome-less trace line cannot be
// constructed.
type Record struct {
	name string
	args []string
}

// NewRecord returns a Record for the named call.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Arg appends an argument rendered with the %v verb.
func (r *Record) Arg(v any) *Record {
	r.args = append(r.args, fmt.Sprintf("%v", v))
	return r
}

// Hex appends an argument rendered in hexadecimal.
func (r *Record) Hex(v uint64) *Record {
	r.args = append(r.args, fmt.Sprintf("%#x", v))
	return r
}

// Str appends a quoted string argument.
func (r *Record) Str(s string) *Record {
	r.args = append(r.args, fmt.Sprintf("%q", s))
	return r
}

// Done emits the record with the given outcome as one line on the trace
// stream. An error outcome additionally dumps a stack trace to aid fault
// localization; the dump never alters the outcome seen by the caller.
func (r *Record) Done(rval uintptr, err error) {
	var line string
	if err == nil {
		line = fmt.Sprintf("%s%s%s(%s) = %#x",
			colorGreen, r.name, colorReset, strings.Join(r.args, ", "), rval)
	} else {
		line = fmt.Sprintf("%s%s%s(%s) = %#x errno=%d (%v)",
			colorRed, r.name, colorReset, strings.Join(r.args, ", "),
			rval, kernel.ExtractErrno(err), err)
	}
	log.Log().DebugfAtDepth(1, "%s", line)

	if err != nil {
		log.Traceback("%s failed", r.name)
	}
}
