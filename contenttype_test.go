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

var _ = Describe("content types", func() {

	DescribeTable("maps extensions",
		func(ext string, expectedContentType string, expectedMime string) {
			Expect(ContentType(ext)).To(Equal(expectedContentType))
			Expect(ContentType("." + ext)).To(Equal(expectedContentType))
			Expect(MimeType(ext)).To(Equal(expectedMime))
		},
		Entry(nil, "html", "text/html; charset=utf-8", "text/html"),
		Entry(nil, "js", "application/javascript; charset=utf-8", "application/javascript"),
		Entry(nil, "css", "text/css; charset=utf-8", "text/css"),
		Entry(nil, "json", "application/json; charset=utf-8", "application/json"),
		Entry(nil, "wasm", "application/wasm", "application/wasm"),
		Entry(nil, "svg", "image/svg+xml", "image/svg+xml"),
		Entry(nil, "png", "image/png", "image/png"),
		Entry(nil, "jpg", "image/jpeg", "image/jpeg"),
		Entry(nil, "jpeg", "image/jpeg", "image/jpeg"),
		Entry(nil, "webp", "image/webp", "image/webp"),
		Entry(nil, "avif", "image/avif", "image/avif"),
		Entry(nil, "ico", "image/x-icon", "image/x-icon"),
		Entry(nil, "woff2", "font/woff2", "font/woff2"),
		Entry(nil, "map", "application/json; charset=utf-8", "application/json"),
		Entry(nil, "txt", "text/plain; charset=utf-8", "text/plain"),
	)

	It("matches extensions case-insensitively", func() {
		Expect(ContentType("HTML")).To(Equal("text/html; charset=utf-8"))
		Expect(ContentType(".WaSm")).To(Equal("application/wasm"))
	})

	DescribeTable("defaults to octet streams",
		func(ext string) {
			Expect(ContentType(ext)).To(Equal(DefaultContentType))
			Expect(MimeType(ext)).To(Equal(DefaultContentType))
		},
		Entry("no extension", ""),
		Entry("just a dot", "."),
		Entry("unknown extension", "exe"),
		Entry("near miss", "woff"),
	)

	It("keeps the table stable and free of surprises", func() {
		for ext, ct := range contentTypes {
			Expect(ContentType(ext)).To(Equal(ct), ext)
			Expect(MimeType(ext)).NotTo(ContainSubstring(";"), ext)
		}
	})

})
