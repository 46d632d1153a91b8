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
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/thediveo/schemeserve/test/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("serving over HTTP", func() {

	newRequest := func(method, path string, header http.Header) *http.Request {
		return &http.Request{
			Method: method,
			URL:    Successful(url.Parse("http://127.0.0.1:12345" + path)),
			Header: header,
		}
	}

	DescribeTable("serves assets using varying sources",
		func(opt Option) {
			h := NewResponder(opt)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, newRequest(http.MethodGet, "/icon.png", nil))
			Expect(w.Result().StatusCode).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("image/png"))
			Expect(w.Header().Get("Content-Length")).To(Equal(fmt.Sprint(w.Body.Len())))
		},
		Entry("from embedded fs", WithBundle(embStaticFs)),
		Entry("from test dir fs", WithBundle(os.DirFS("./test/build"))),
		Entry("from static root", WithStaticRoot("./test/build")),
	)

	DescribeTable("serves the index document verbatim",
		func(path string, header http.Header) {
			h := NewResponder(WithStaticRoot(Successful(filepath.Abs("test/build"))))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, newRequest(http.MethodGet, path, header))
			Expect(w.Result().StatusCode).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Cross-Origin-Opener-Policy")).To(Equal("same-origin"))
			doc, err := goquery.NewDocumentFromReader(w.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Find("title").Text()).To(Equal("CANARY INDEX"))
			base := doc.Find("base")
			Expect(base.Length()).To(Equal(1), "<base> element lost")
			href, _ := base.First().Attr("href")
			Expect(href).To(Equal("/"))
			Expect(doc.Find("#app").AttrOr("data-canary", "")).To(Equal("index"))
		},
		Entry("root", "/", nil),
		Entry("editor", "/editor", nil),
		Entry("client-side route", "/some/route", http.Header{"Accept": {"text/html"}}),
	)

	It("answers traversal attempts with 404", func() {
		h := NewResponder(WithStaticRoot("./test/build"), WithBundle(embStaticFs))
		w := httptest.NewRecorder()
		r := newRequest(http.MethodGet, "/", http.Header{"Accept": {"*/*"}})
		r.URL.Path = "/../index.html"
		r.URL.RawPath = "/%2e%2e/index.html"
		h.ServeHTTP(w, r)
		Expect(w.Result().StatusCode).To(Equal(http.StatusNotFound))
		Expect(w.Header().Get("Cache-Control")).To(Equal("no-cache"))
		Expect(w.Body.String()).To(Equal("Not Found"))
	})

	It("omits the body for HEAD requests", func() {
		h := NewResponder(WithStaticRoot("./test/build"))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, newRequest(http.MethodHead, "/static/js/some.js", nil))
		Expect(w.Result().StatusCode).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Length")).NotTo(Equal("0"))
		Expect(w.Body.Len()).To(BeZero())
	})

	DescribeTable("normalizes I/O failures",
		func(err error, expected int) {
			h := NewResponder(WithProvider(providerFunc(func(string) (*Asset, error) {
				return nil, err
			})))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, newRequest(http.MethodGet, "/index.html", nil))
			Expect(w.Result().StatusCode).To(Equal(expected))
			Expect(w.Header().Get("Cross-Origin-Embedder-Policy")).To(Equal("require-corp"))
			Expect(w.Body.String()).NotTo(ContainSubstring("secret"))
		},
		Entry("permission denied", fmt.Errorf("secret %w", fs.ErrPermission), http.StatusForbidden),
		Entry("anything else", fmt.Errorf("secret disk on fire"), http.StatusInternalServerError),
	)

})
