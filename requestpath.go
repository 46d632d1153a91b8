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

import "strings"

// RequestPath returns only the path of a request URI, which might either be
// fully qualified, such as "app://localhost/foo?bar", or just a path. Query
// and fragment get chopped off. An empty path is returned as "/".
//
// Please note that we don't use url.Parse here: hosts hand us URIs with custom
// schemes and sometimes rather creative "hosts" that url.Parse might reject,
// whereas all we need is the part after the authority.
func RequestPath(uri string) string {
	p := uri
	if _, rest, ok := strings.Cut(uri, "://"); ok {
		idx := strings.IndexByte(rest, '/')
		if idx < 0 {
			return "/"
		}
		p = rest[idx:]
	}
	if idx := strings.IndexAny(p, "?#"); idx >= 0 {
		p = p[:idx]
	}
	if p == "" {
		return "/"
	}
	return p
}
