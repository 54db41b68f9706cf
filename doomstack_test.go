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
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Fixtures shared by the package tests.

type errorA struct{}

func (errorA) Tag() string              { return "A" }
func (errorA) Description() Description { return Static("first") }

type errorB struct{}

func (errorB) Tag() string              { return "B" }
func (errorB) Description() Description { return Static("second") }

type errorC struct {
	Keep
	code int
}

func (errorC) Tag() string                { return "C" }
func (c errorC) Description() Description { return Describef("failed with code %d", c.code) }

type oupsie struct {
	Keep
	details string
}

func (*oupsie) Tag() string                { return "Oupsie" }
func (o *oupsie) Description() Description { return Owned("Made a mess: " + o.details) }

// ioFailed keeps its original and is itself an error wrapping a cause.
type ioFailed struct {
	Keep
	cause error
}

func (ioFailed) Tag() string              { return "IOFailed" }
func (ioFailed) Description() Description { return Static("i/o failed") }
func (f ioFailed) Error() string          { return "io failed: " + f.cause.Error() }
func (f ioFailed) Unwrap() error          { return f.cause }

// discarded reports false explicitly.
type discarded struct{ n int }

func (discarded) Tag() string              { return "Discarded" }
func (discarded) Description() Description { return Static("dropped on archive") }
func (discarded) KeepOriginal() bool       { return false }

type entryView struct {
	Tag         string
	Description string
	Location    string
}

func view(a Archiver) []entryView {
	var out []entryView
	for e := range a.Archive().Entries() {
		v := entryView{Tag: e.Tag(), Description: e.Description().String()}
		if loc, ok := e.Location(); ok {
			v.Location = loc.String()
		}
		out = append(out, v)
	}
	return out
}

func TestScenario_TopPushThenArchive(t *testing.T) {
	s := Push(IntoTop(errorA{}), errorB{}).Archive()

	want := []entryView{
		{Tag: "B", Description: "second"},
		{Tag: "A", Description: "first"},
	}
	if diff := cmp.Diff(want, view(s)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if got := fmt.Sprint(s); got != "<top: B>" {
		t.Fatalf("Display = %q, want %q", got, "<top: B>")
	}
}

func TestScenario_KeptOriginalCode(t *testing.T) {
	s := IntoTop(errorC{code: 42}).Archive()

	e, ok := s.Newest()
	if !ok {
		t.Fatal("stack must not be empty")
	}
	c, ok := OriginalAs[errorC](e)
	if !ok {
		t.Fatal("original must be retained")
	}
	if c.code != 42 {
		t.Fatalf("code = %d, want 42", c.code)
	}
}

func TestRoundTrip_TopChainMatchesDirectStack(t *testing.T) {
	viaTop := Push(IntoTop(errorA{}), errorB{}).PushAsStack(errorC{code: 7})
	direct := New().PushAsStack(errorA{}).PushAsStack(errorB{}).PushAsStack(errorC{code: 7})

	if diff := cmp.Diff(view(direct), view(viaTop)); diff != "" {
		t.Fatalf("chains differ (-direct +viaTop):\n%s", diff)
	}
	if viaTop.Len() != 3 || direct.Len() != 3 {
		t.Fatalf("Len = %d/%d, want 3", viaTop.Len(), direct.Len())
	}
}

func TestFail_ReturnsZeroAndChain(t *testing.T) {
	n, top := Fail[int](errorA{})
	if n != 0 {
		t.Fatalf("zero value = %d", n)
	}
	if top.Doom().Tag() != "A" || !top.Base().IsEmpty() {
		t.Fatalf("unexpected top %+v", top)
	}

	s, st := FailAsStack[string](errorB{})
	if s != "" {
		t.Fatalf("zero value = %q", s)
	}
	if st.Len() != 1 || st.Error() != "<top: B>" {
		t.Fatalf("unexpected stack %+v", st)
	}
}

func TestFail_AssignableToError(t *testing.T) {
	f := func() (int, error) { return Fail[int](errorA{}) }
	_, err := f()
	if err == nil {
		t.Fatal("Fail must produce a non-nil error")
	}
	var top Top[errorA]
	if !errors.As(err, &top) {
		t.Fatalf("errors.As(Top[errorA]) failed for %T", err)
	}
}

func TestIntoStack(t *testing.T) {
	s := IntoStack(errorA{})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if e, _ := s.Newest(); e.Tag() != "A" {
		t.Fatalf("tag = %q, want A", e.Tag())
	}
}
