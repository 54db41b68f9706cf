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

// Package logx attaches failure chains to github.com/go-logr/logr records.
//
// The core package never logs; callers pick the logger at the edge:
//
//	if err := load(path); err != nil {
//	    logx.Error(log, err, "config not loaded", "path", path)
//	}
package logx

import (
	"errors"
	"slices"
	"strings"

	"dirpx.dev/doomstack"
	"github.com/go-logr/logr"
)

// Keys used for the chain in log records.
const (
	KeyTop   = "doom.top"
	KeyChain = "doom.chain"
)

// KeysAndValues returns the key/value pairs describing the chain carried by
// err: the most recent tag under KeyTop and the %+v lines under KeyChain.
// It returns nil when err carries no chain.
func KeysAndValues(err error) []any {
	var chain doomstack.Archiver
	if err == nil || !errors.As(err, &chain) {
		return nil
	}
	tags := doomstack.Tags(chain)
	if len(tags) == 0 {
		return nil
	}
	return []any{
		KeyTop, tags[0],
		KeyChain, strings.Split(doomstack.Debug(chain), "\n"),
	}
}

// Error logs err through l.Error, appending the chain pairs to kv.
func Error(l logr.Logger, err error, msg string, kv ...any) {
	l.Error(err, msg, slices.Concat(kv, KeysAndValues(err))...)
}

// Info logs err at the given verbosity without marking the record as an
// error, for failures that were handled (retries, fallbacks).
func Info(l logr.Logger, level int, err error, msg string, kv ...any) {
	l.V(level).Info(msg, slices.Concat(kv, KeysAndValues(err))...)
}
