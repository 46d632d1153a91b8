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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("request paths", func() {

	DescribeTable("extracts the path from request URIs",
		func(uri string, expected string) {
			Expect(RequestPath(uri)).To(Equal(expected))
		},
		Entry("scheme root", "app://localhost/", "/"),
		Entry("scheme without path", "app://localhost", "/"),
		Entry("scheme without path but query", "app://localhost?foo=bar", "/"),
		Entry("scheme with path", "app://localhost/static/js/some.js", "/static/js/some.js"),
		Entry("scheme with query and fragment", "app://localhost/a.js?v=1#top", "/a.js"),
		Entry("fragment before question mark", "app://localhost/a.js#x?y", "/a.js"),
		Entry("http URL with port", "http://127.0.0.1:12345/editor", "/editor"),
		Entry("path only", "/foo/bar", "/foo/bar"),
		Entry("path only with query", "/foo?bar", "/foo"),
		Entry("empty", "", "/"),
		Entry("only query", "?foo", "/"),
		Entry("encoded stays encoded", "app://localhost/%2e%2e/x", "/%2e%2e/x"),
	)

})
