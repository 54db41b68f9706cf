/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package doomstack

import (
	"iter"
	"strings"
)

// Archiver is implemented by every chain shape. Archive returns the chain
// with all of its members archived: a Stack returns itself, a Top archives
// its live value on top of its base.
type Archiver interface {
	Archive() Stack
}

// Stack is a fully archived chain of failures, most recent on top.
//
// A Stack is an immutable value: every operation returns a new Stack and
// leaves its receiver untouched. Internally it is a persistent list of
// nodes, newest first, that copies share; pushing or spotting never touches
// a node another copy can see. The zero value is an empty Stack.
type Stack struct {
	head *node
	size int
}

type node struct {
	entry Entry
	next  *node
}

var _ Archiver = Stack{}

// New returns an empty Stack.
func New() Stack { return Stack{} }

// Len returns the number of archived entries.
func (s Stack) Len() int { return s.size }

// IsEmpty reports whether s holds no entries.
func (s Stack) IsEmpty() bool { return s.size == 0 }

// Entries iterates over the archived entries, most recent first.
func (s Stack) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.entry) {
				return
			}
		}
	}
}

// Newest returns the most recently archived entry.
func (s Stack) Newest() (Entry, bool) {
	if s.head == nil {
		return Entry{}, false
	}
	return s.head.entry, true
}

// Archive returns s. It lets a Stack be passed wherever an Archiver is
// accepted.
func (s Stack) Archive() Stack { return s }

// PushAsStack archives doom on top of s.
func (s Stack) PushAsStack(doom Doom) Stack {
	return s.push(Archive(doom))
}

// Spot sets the location of the most recent entry, replacing any location it
// already had. Older entries are unaffected.
//
// Spotting an empty Stack is a programming error and panics.
func (s Stack) Spot(loc Location) Stack {
	if s.head == nil {
		panic("doomstack: Spot called on an empty Stack")
	}
	return Stack{
		head: &node{entry: s.head.entry.Spotted(loc), next: s.head.next},
		size: s.size,
	}
}

func (s Stack) push(e Entry) Stack {
	return Stack{head: &node{entry: e, next: s.head}, size: s.size + 1}
}

// Push puts doom on top of the chain without archiving it. If the chain is a
// Top, its live value is archived first.
func Push[D Doom](chain Archiver, doom D) Top[D] {
	return newTop(doom, chain.Archive())
}

// Pot is Push followed by Top.Spot.
func Pot[D Doom](chain Archiver, doom D, loc Location) Top[D] {
	return Push(chain, doom).Spot(loc)
}

// Error renders "<top: TAG>" for the most recent entry.
func (s Stack) Error() string {
	if s.head == nil {
		return "<top: none>"
	}
	return "<top: " + s.head.entry.tag + ">"
}

func (s Stack) debug() string {
	var b strings.Builder
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteByte('\n')
		}
		b.WriteString(n.entry.GoString())
	}
	return b.String()
}

func (s Stack) tags() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.entry.tag) {
				return
			}
		}
	}
}

func (s Stack) originals() iter.Seq[any] {
	return func(yield func(any) bool) {
		for n := s.head; n != nil; n = n.next {
			if n.entry.original == nil {
				continue
			}
			if !yield(n.entry.original) {
				return
			}
		}
	}
}
