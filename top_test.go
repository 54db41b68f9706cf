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

func TestTop_TypedAccess(t *testing.T) {
	top := IntoTop(errorC{code: 42})
	if top.Doom().code != 42 {
		t.Fatalf("code = %d, want 42", top.Doom().code)
	}
	if !top.Base().IsEmpty() {
		t.Fatal("IntoTop must start from an empty base")
	}
	if _, ok := top.Location(); ok {
		t.Fatal("fresh Top must not be spotted")
	}
}

func TestTop_SpotIsPendingUntilArchive(t *testing.T) {
	loc := Location{File: "top.go", Line: 10}
	top := IntoTop(errorA{}).Spot(loc)

	if top.Base().Len() != 0 {
		t.Fatal("Spot must not archive the live value")
	}
	s := top.Archive()
	e, _ := s.Newest()
	if got, ok := e.Location(); !ok || got != loc {
		t.Fatalf("archived location = %v, %v; want %v", got, ok, loc)
	}
}

func TestTop_SpotTargetsLiveValueNotBase(t *testing.T) {
	baseLoc := Location{File: "base.go", Line: 1}
	topLoc := Location{File: "top.go", Line: 2}

	s := Push(New().PushAsStack(errorA{}).Spot(baseLoc), errorB{}).Spot(topLoc).Archive()

	want := []entryView{
		{Tag: "B", Description: "second", Location: "top.go:2"},
		{Tag: "A", Description: "first", Location: "base.go:1"},
	}
	if diff := cmp.Diff(want, view(s)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTop_PushArchivesPrevious(t *testing.T) {
	next := Push(IntoTop(errorC{code: 1}), errorA{})

	if next.Doom().Tag() != "A" {
		t.Fatalf("top tag = %q, want A", next.Doom().Tag())
	}
	if next.Base().Len() != 1 {
		t.Fatalf("base Len = %d, want 1", next.Base().Len())
	}
	e, _ := next.Base().Newest()
	c, ok := OriginalAs[errorC](e)
	if !ok || c.code != 1 {
		t.Fatalf("archived errorC lost: %v, %v", c, ok)
	}
}

func TestTop_Pot(t *testing.T) {
	l1 := Location{File: "f.go", Line: 1}
	l2 := Location{File: "f.go", Line: 2}

	s := Pot(Pot(New(), errorA{}, l1), errorB{}, l2).Archive()

	want := []entryView{
		{Tag: "B", Description: "second", Location: "f.go:2"},
		{Tag: "A", Description: "first", Location: "f.go:1"},
	}
	if diff := cmp.Diff(want, view(s)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTop_PushAsStack(t *testing.T) {
	s := IntoTop(errorA{}).PushAsStack(errorB{})
	if diff := cmp.Diff([]string{"B", "A"}, Tags(s)); diff != "" {
		t.Fatalf("tags (-want +got):\n%s", diff)
	}
}

func TestTop_ArchiveDoesNotChangeTop(t *testing.T) {
	top := IntoTop(errorA{})
	_ = top.Archive()
	_ = top.Archive()
	if !top.Base().IsEmpty() {
		t.Fatal("Archive must not modify the Top")
	}
}

func TestTop_Error(t *testing.T) {
	top := Push(IntoStack(errorA{}), errorB{})
	if got := top.Error(); got != "<top: B>" {
		t.Fatalf("Error() = %q, want <top: B>", got)
	}
}
