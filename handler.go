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
	"net/http"
	"strconv"
)

var _ http.Handler = (*Responder)(nil)

// ServeHTTP serves the same assets as Serve over plain HTTP, such as when
// running a loopback server for hosts without custom scheme support. Assets
// that cannot be read result in normalized HTTP errors that don't leak any
// server details.
func (r *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, err := r.Serve(HTTPRequest(req))
	if err != nil {
		NormalizedHttpError(w, err)
		return
	}
	h := w.Header()
	for key, values := range resp.Header {
		h[key] = values
	}
	h.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(resp.Body)
}
