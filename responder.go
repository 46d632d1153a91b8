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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

var discardLogger = log.New(io.Discard)

// EditorAlias is the default landing path alias that gets served exactly
// like the root path "/".
const EditorAlias = "/editor"

// Request is an inbound request for the application's custom URL scheme, as
// handed to us by the host's protocol dispatcher.
type Request interface {
	URI() string               // full request URI, or just the request path.
	Header(name string) string // value of the named request header, if any.
}

// SchemeRequest is a simple Request implementation for hosts that pass
// requests as plain URI and header values.
type SchemeRequest struct {
	URL     string
	Headers http.Header
}

var _ Request = (*SchemeRequest)(nil)

func (r *SchemeRequest) URI() string               { return r.URL }
func (r *SchemeRequest) Header(name string) string { return r.Headers.Get(name) }

// HTTPRequest adapts an http.Request to a Request.
func HTTPRequest(r *http.Request) Request { return httpRequest{r} }

type httpRequest struct{ r *http.Request }

// URI returns the still-escaped request URI, so that any percent-encoded
// traversal attempts are decoded exactly once by the safe path resolution.
func (r httpRequest) URI() string               { return r.r.URL.RequestURI() }
func (r httpRequest) Header(name string) string { return r.r.Header.Get(name) }

// Response is the HTTP-shaped answer to a Request.
type Response struct {
	Status   int
	Header   http.Header
	Body     []byte
	MimeType string // bare MIME type hint for the host, without charset.
}

// Responder resolves requests against an ordered chain of asset providers,
// where the first provider having the requested asset wins. Unmatched
// requests from clients accepting HTML documents get the index document
// instead, so that client-side routing in single page applications works.
//
// A Responder is immutable after creation and thus safe for concurrent use,
// as long as its providers are. The zero value has no providers and thus
// answers all requests with 404s; use NewResponder to get the default
// aliases.
type Responder struct {
	providers []Provider
	aliases   map[string]string
	log       *log.Logger
}

// Option sets optional properties at the time of creating a Responder.
type Option func(*Responder)

// WithProvider appends the specified provider to the chain of providers.
// Providers are queried in the order they were added.
func WithProvider(p Provider) Option {
	return func(r *Responder) {
		if p != nil {
			r.providers = append(r.providers, p)
		}
	}
}

// WithStaticRoot appends a provider serving from the specified static root
// directory; an empty root adds nothing.
func WithStaticRoot(root string) Option {
	if root == "" {
		return func(*Responder) {}
	}
	return WithProvider(NewDirProvider(root))
}

// WithBundle appends a provider serving from the specified embedded bundle; a
// nil bundle adds nothing.
func WithBundle(bundle fs.FS) Option {
	if bundle == nil {
		return func(*Responder) {}
	}
	return WithProvider(NewFSProvider(bundle))
}

// WithAliases replaces the default request path aliases, mapping request
// paths to the paths to serve instead. Pass nil to disable aliasing.
func WithAliases(aliases map[string]string) Option {
	return func(r *Responder) {
		r.aliases = make(map[string]string, len(aliases))
		for from, to := range aliases {
			r.aliases[from] = to
		}
	}
}

// WithLogger sets the logger to report resolution details to. By default, a
// Responder doesn't log at all.
func WithLogger(l *log.Logger) Option {
	return func(r *Responder) {
		if l != nil {
			r.log = l
		}
	}
}

// NewResponder returns a new Responder configured with the specified options.
// Without any providers, it answers all requests with 404s.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{
		aliases: map[string]string{EditorAlias: "/"},
		log:     discardLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Serve answers the specified request. It returns an error only when an asset
// exists but cannot be read; all other situations, including rejected request
// paths, result in well-formed responses.
func (r *Responder) Serve(req Request) (*Response, error) {
	logger := r.logger()
	reqPath := r.assetPath(RequestPath(req.URI()))
	asset, err := r.lookup(reqPath)
	switch {
	case errors.Is(err, ErrRejected):
		logger.Warn("rejected request path", "path", reqPath, "err", err)
		return notFound(), nil
	case err != nil:
		logger.Error("cannot serve asset", "path", reqPath, "err", err)
		return nil, fmt.Errorf("serving %q: %w", reqPath, err)
	}
	if asset == nil && WantsHTML(req.Header("Accept")) {
		logger.Debug("falling back to index document", "path", reqPath)
		asset, err = r.lookup("/" + IndexFile)
		if err != nil && !errors.Is(err, ErrRejected) {
			logger.Error("cannot serve index document", "err", err)
			return nil, fmt.Errorf("serving %q: %w", reqPath, err)
		}
	}
	if asset == nil {
		logger.Debug("asset not found", "path", reqPath)
		return notFound(), nil
	}
	logger.Debug("serving asset", "path", reqPath, "asset", asset.Name, "size", len(asset.Body))
	return assetResponse(asset), nil
}

// logger returns the logger to use, falling back to a silent one for
// Responders not created by NewResponder.
func (r *Responder) logger() *log.Logger {
	if r.log == nil {
		return discardLogger
	}
	return r.log
}

// assetPath applies aliases and index defaults to the request path.
func (r *Responder) assetPath(reqPath string) string {
	if alias, ok := r.aliases[reqPath]; ok {
		reqPath = alias
	}
	if strings.HasSuffix(reqPath, "/") {
		reqPath += IndexFile
	}
	if reqPath == "" {
		reqPath = "/" + IndexFile
	}
	return reqPath
}

// lookup queries the providers in order, stopping at the first hit, the first
// rejection, or the first I/O failure.
func (r *Responder) lookup(reqPath string) (*Asset, error) {
	for _, p := range r.providers {
		asset, err := p.TryGet(reqPath)
		if err != nil || asset != nil {
			return asset, err
		}
	}
	return nil, nil
}

// WantsHTML reports whether a client with the specified Accept header value
// would take an HTML document. Any wildcard "*/*" counts, so this cannot tell
// real navigation requests from data fetches.
func WantsHTML(accept string) bool {
	accept = strings.ToLower(accept)
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

// SetCommonHeaders sets the caching and cross-origin isolation headers that
// all responses carry, together with the specified Content-Type.
func SetCommonHeaders(h http.Header, contentType string) {
	h.Set("Cache-Control", "no-cache")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Content-Type", contentType)
}

func commonHeaders(contentType string) http.Header {
	h := make(http.Header, 4)
	SetCommonHeaders(h, contentType)
	return h
}

func assetResponse(asset *Asset) *Response {
	return &Response{
		Status:   http.StatusOK,
		Header:   commonHeaders(asset.ContentType()),
		Body:     asset.Body,
		MimeType: asset.MimeType(),
	}
}

func notFound() *Response {
	return &Response{
		Status:   http.StatusNotFound,
		Header:   commonHeaders(ContentType("txt")),
		Body:     []byte("Not Found"),
		MimeType: MimeType("txt"),
	}
}
