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

//go:build !embedassets

package bundle

import "io/fs"

// Bundle returns nil, as this binary relies solely on the on-disk static
// root. Build with the "embedassets" tag to bake the contents of the dist
// directory into the binary instead.
func Bundle() fs.FS { return nil }
