// Copyright 2022, 2026 Harald Albrecht.
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
	"io/fs"
	"net/http"
)

// NormalizedHttpError writes a normalized plain-text HTTP error message and
// HTTP status code based on the specified error, but without leaking any
// interesting internal server details from this specified error. Rejected
// request paths are reported as missing, same as missing assets.
//
// Error responses carry the same caching and cross-origin isolation headers
// as regular asset responses.
func NormalizedHttpError(w http.ResponseWriter, err error) {
	SetCommonHeaders(w.Header(), ContentType("txt"))
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, ErrRejected):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
