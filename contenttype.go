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
	"strings"
)

// DefaultContentType is served for assets with unknown or missing file
// extensions.
const DefaultContentType = "application/octet-stream"

// contentTypes maps lower-case file extensions (without the leading dot) to
// their Content-Type header values. We deliberately don't use
// mime.TypeByExtension, as its results depend on the host's MIME database.
var contentTypes = map[string]string{
	"html":  "text/html; charset=utf-8",
	"js":    "application/javascript; charset=utf-8",
	"css":   "text/css; charset=utf-8",
	"json":  "application/json; charset=utf-8",
	"wasm":  "application/wasm",
	"svg":   "image/svg+xml",
	"png":   "image/png",
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"webp":  "image/webp",
	"avif":  "image/avif",
	"ico":   "image/x-icon",
	"woff2": "font/woff2",
	"map":   "application/json; charset=utf-8",
	"txt":   "text/plain; charset=utf-8",
}

// ContentType returns the Content-Type header value for the specified file
// extension, which may or may not include the leading dot. Extensions are
// matched case-insensitively.
func ContentType(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return ct
	}
	return DefaultContentType
}

// MimeType returns the bare MIME type for the specified file extension, that
// is, the Content-Type without any parameters such as "charset".
func MimeType(ext string) string {
	ct := ContentType(ext)
	if idx := strings.IndexByte(ct, ';'); idx >= 0 {
		return strings.TrimSpace(ct[:idx])
	}
	return ct
}
