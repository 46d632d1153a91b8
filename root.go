// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schemeserve

import (
	"errors"
	"os"
	"path/filepath"
)

// StaticRootDir is the name of the subdirectory holding the static assets
// inside the candidate directories searched by FindStaticRoot.
const StaticRootDir = "build"

// ErrNoStaticRoot is returned by FindStaticRoot if none of the candidate
// directories contains a usable static assets subdirectory.
var ErrNoStaticRoot = errors.New("missing static root")

// StaticRootCandidates returns the directories to search for the static root,
// in order of priority: first the application's resource directory, as told
// by the host application runtime, and then the directory containing the
// running executable. An empty resourceDir is skipped.
func StaticRootCandidates(resourceDir string) []string {
	candidates := make([]string, 0, 2)
	if resourceDir != "" {
		candidates = append(candidates, resourceDir)
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(exe))
	}
	return candidates
}

// FindStaticRoot returns the absolute path of the first "build" subdirectory
// found in the specified candidate directories, or ErrNoStaticRoot.
//
// A missing static root isn't fatal: it just means that there is no on-disk
// source and only an embedded bundle, if any, can serve requests.
func FindStaticRoot(dirs ...string) (string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, StaticRootDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs, nil
			}
			return candidate, nil
		}
	}
	return "", ErrNoStaticRoot
}
