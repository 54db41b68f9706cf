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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack_New(t *testing.T) {
	s := New()
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("New() must be empty, Len=%d", s.Len())
	}
	if _, ok := s.Newest(); ok {
		t.Fatal("Newest() on empty stack must report false")
	}
	for range s.Entries() {
		t.Fatal("empty stack yielded an entry")
	}
	if got := s.Error(); got != "<top: none>" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestStack_EntriesNewestFirst(t *testing.T) {
	s := New().PushAsStack(errorA{}).PushAsStack(errorB{}).PushAsStack(errorC{})

	var got []string
	for e := range s.Entries() {
		got = append(got, e.Tag())
	}
	if diff := cmp.Diff([]string{"C", "B", "A"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	// Entries is restartable.
	n := 0
	for range s.Entries() {
		n++
	}
	if n != 3 {
		t.Fatalf("second iteration yielded %d entries", n)
	}
}

func TestStack_EntriesEarlyBreak(t *testing.T) {
	s := New().PushAsStack(errorA{}).PushAsStack(errorB{})
	for e := range s.Entries() {
		if e.Tag() != "B" {
			t.Fatalf("first entry = %q, want B", e.Tag())
		}
		break
	}
}

func TestStack_SpotOnlyTouchesNewest(t *testing.T) {
	l1 := Location{File: "one.go", Line: 1}
	l2 := Location{File: "two.go", Line: 2}
	l3 := Location{File: "three.go", Line: 3}

	s := New().
		PushAsStack(errorA{}).Spot(l1).
		PushAsStack(errorB{}).Spot(l2).Spot(l3)

	want := []entryView{
		{Tag: "B", Description: "second", Location: "three.go:3"},
		{Tag: "A", Description: "first", Location: "one.go:1"},
	}
	if diff := cmp.Diff(want, view(s)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestStack_SpotDoesNotAffectClones(t *testing.T) {
	base := New().PushAsStack(errorA{})
	spotted := base.Spot(Location{File: "x.go", Line: 1})

	e, _ := base.Newest()
	if _, ok := e.Location(); ok {
		t.Fatal("Spot must not modify its receiver")
	}
	e, _ = spotted.Newest()
	if _, ok := e.Location(); !ok {
		t.Fatal("spotted copy must carry the location")
	}
}

func TestStack_SpotEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Spot on an empty Stack should panic")
		}
	}()
	_ = New().Spot(Here())
}

func TestStack_DivergingClonesDoNotAlias(t *testing.T) {
	base := New().PushAsStack(errorA{})
	left := base.PushAsStack(errorB{})
	right := base.PushAsStack(errorC{code: 1})

	if base.Len() != 1 {
		t.Fatalf("base Len = %d, want 1", base.Len())
	}
	if diff := cmp.Diff([]string{"B", "A"}, Tags(left)); diff != "" {
		t.Fatalf("left (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"C", "A"}, Tags(right)); diff != "" {
		t.Fatalf("right (-want +got):\n%s", diff)
	}
}

func TestStack_DiscardedOriginalStaysGoneAcrossClones(t *testing.T) {
	s := New().PushAsStack(discarded{n: 5})
	clones := []Stack{s, s, s.PushAsStack(errorA{})}
	for i, c := range clones {
		for e := range c.Entries() {
			if e.Tag() != "Discarded" {
				continue
			}
			if _, ok := e.Original(); ok {
				t.Fatalf("clone %d retained a discarded original", i)
			}
		}
	}
}

func TestStack_PushKeepsStackUntyped(t *testing.T) {
	s := New().PushAsStack(errorA{})
	top := Push(s, errorC{code: 8})

	if top.Doom().code != 8 {
		t.Fatalf("typed access lost: code = %d", top.Doom().code)
	}
	if top.Base().Len() != 1 {
		t.Fatalf("Push must not archive the new value, base Len = %d", top.Base().Len())
	}
}

func TestStack_Pot(t *testing.T) {
	loc := Location{File: "pot.go", Line: 4}
	top := Pot(New(), errorB{}, loc)

	if got, ok := top.Location(); !ok || got != loc {
		t.Fatalf("Location() = %v, %v; want %v", got, ok, loc)
	}
	if !top.Base().IsEmpty() {
		t.Fatal("Pot on an empty Stack must leave the base empty")
	}
}

func TestStack_ArchiveIsIdentity(t *testing.T) {
	s := New().PushAsStack(errorA{})
	if s.Archive() != s {
		t.Fatal("Stack.Archive must return the receiver")
	}
}
