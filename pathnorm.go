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
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// NormalizeRelative turns p into a clean, slash-separated relative path,
// returning false if p tries to climb above its (implicit) root or is rooted
// itself. Both "/" and "\" separate path components, so that Windows-style
// traversal attempts get caught on every platform.
//
// An empty p results in an empty relative path; it is up to the caller to
// then pick a default file name, such as "index.html".
//
// NormalizeRelative works on already percent-decoded paths only: any "%2e%2e"
// must have been decoded into ".." before, as otherwise it would pass as a
// plain (and rather odd) file name.
func NormalizeRelative(p string) (string, bool) {
	if strings.IndexByte(p, 0) >= 0 {
		return "", false
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) {
		return "", false // rooted, or UNC on Windows.
	}
	if hasDrivePrefix(p) || filepath.VolumeName(p) != "" {
		return "", false
	}
	segments := make([]string, 0, strings.Count(p, "/")+1)
	for _, segment := range strings.FieldsFunc(p, isSeparator) {
		switch segment {
		case ".":
		case "..":
			if len(segments) == 0 {
				return "", false
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, "/"), true
}

// SafeResolve returns the file system path inside root for the specified URL
// path, or false if the URL path is malformed or would escape root. Exactly one
// leading slash is stripped off the URL path before percent-decoding it, so
// "//etc/passwd" is still considered to be rooted and thus gets rejected.
//
// SafeResolve never touches the file system: the returned path is lexically
// contained in root simply because any ".." was already resolved (or
// rejected) before joining onto root.
func SafeResolve(root, urlPath string) (string, bool) {
	rel, ok := relativeAssetPath(urlPath)
	if !ok {
		return "", false
	}
	return filepath.Join(root, filepath.FromSlash(rel)), true
}

// relativeAssetPath strips a single leading slash from the URL path, decodes
// it, and then normalizes it into a relative, slash-separated path that is
// suitable for both joining onto a static root as well as for fs.FS lookups.
func relativeAssetPath(urlPath string) (string, bool) {
	decoded, err := url.PathUnescape(strings.TrimPrefix(urlPath, "/"))
	if err != nil || !utf8.ValidString(decoded) {
		return "", false
	}
	return NormalizeRelative(decoded)
}

func isSeparator(r rune) bool { return r == '/' || r == '\\' }

// hasDrivePrefix reports whether p starts with an MS-DOS drive letter prefix
// like "C:", regardless of the platform we're running on.
func hasDrivePrefix(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0] | 0x20 // lower case ASCII letters
	return c >= 'a' && c <= 'z'
}
