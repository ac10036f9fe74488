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

// Package kernel provides the execution context for syscalls: tasks, the
// syscall table, and the per-task state handlers mutate.
package kernel

import (
	"petrel.dev/petrel/pkg/sync"
	"petrel.dev/petrel/pkg/usermem"
)

// Task represents one thread of execution in an unprivileged program. Every
// syscall executes on behalf of exactly one Task, passed explicitly to its
// handler; handlers never consult global state to find their caller.
//
// Syscalls from a single Task are strictly sequential; the Task is handed to
// at most one executing handler at a time. Fields below are either immutable
// after creation or protected by their own locks, since debuggers and fault
// handlers may inspect a Task concurrently with a running syscall.
type Task struct {
	// tid is this task's thread identifier. Immutable.
	tid ThreadID

	// ptid is the thread identifier of this task's parent, or 0 if the
	// task has no parent. Immutable.
	ptid ThreadID

	// memory provides access to the task's address space. Immutable.
	memory usermem.IO

	// table is the syscall table this task dispatches against. Immutable.
	table *SyscallTable

	// utsns is the UTS namespace the task belongs to. Immutable.
	utsns *UTSNamespace

	// memTags holds the task's debugging tags for address ranges. It has
	// its own lock.
	memTags MemoryTagMap

	// mu protects the exit state below.
	mu         sync.Mutex
	exited     bool
	exitStatus int32
}

// TaskConfig covers everything needed to create a Task.
type TaskConfig struct {
	// ThreadID is the new task's thread identifier.
	ThreadID ThreadID

	// ParentID is the thread identifier of the creating task, or 0.
	ParentID ThreadID

	// Memory is the new task's address space.
	Memory usermem.IO

	// SyscallTable is the syscall table the task dispatches against.
	SyscallTable *SyscallTable

	// UTSNamespace is the UTS namespace for the new task.
	UTSNamespace *UTSNamespace
}

// NewTask creates a Task from cfg.
func NewTask(cfg TaskConfig) *Task {
	return &Task{
		tid:    cfg.ThreadID,
		ptid:   cfg.ParentID,
		memory: cfg.Memory,
		table:  cfg.SyscallTable,
		utsns:  cfg.UTSNamespace,
	}
}

// ThreadID returns this task's thread identifier.
func (t *Task) ThreadID() ThreadID {
	return t.tid
}

// ParentID returns the thread identifier of this task's parent, or 0 if it
// has none.
func (t *Task) ParentID() ThreadID {
	return t.ptid
}

// Memory returns the task's address space.
func (t *Task) Memory() usermem.IO {
	return t.memory
}

// SyscallTable returns the syscall table the task dispatches against.
func (t *Task) SyscallTable() *SyscallTable {
	return t.table
}

// UTSNamespace returns the UTS namespace the task belongs to.
func (t *Task) UTSNamespace() *UTSNamespace {
	return t.utsns
}

// MemoryTags returns the task's memory tag map.
func (t *Task) MemoryTags() *MemoryTagMap {
	return &t.memTags
}

// PrepareExit marks the task as exiting with the given status. The actual
// teardown is owned by the scheduler, which observes ExitStatus.
func (t *Task) PrepareExit(status int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exited = true
	t.exitStatus = status
}

// ExitStatus returns the task's exit status and whether the task is exiting.
func (t *Task) ExitStatus() (int32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exitStatus, t.exited
}
