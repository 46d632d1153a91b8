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

//go:build embedassets

package bundle

import (
	"embed"
	"io/fs"
)

//go:embed dist
var assets embed.FS

// Bundle returns the static assets baked into the binary at build time.
func Bundle() fs.FS {
	dist, err := fs.Sub(assets, "dist")
	if err != nil {
		panic("bundle: " + err.Error()) // can't happen with a valid go:embed.
	}
	return dist
}
