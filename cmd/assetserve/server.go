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

package main

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/thediveo/schemeserve"
	"github.com/thediveo/schemeserve/internal/config"
)

const shutdownTimeout = 5 * time.Second

// newResponder returns a responder serving first from the on-disk static
// root, if there is one and it isn't disabled, and then from the embedded
// bundle, if any. Missing assets only degrade what can be served.
func newResponder(cfg *config.Config, logger *log.Logger, embedded fs.FS) *schemeserve.Responder {
	opts := []schemeserve.Option{schemeserve.WithLogger(logger)}
	sources := 0
	if !cfg.NoDisk {
		root, err := schemeserve.FindStaticRoot(schemeserve.StaticRootCandidates(cfg.ResourceDir)...)
		if err != nil {
			logger.Warn("no on-disk static assets", "err", err)
		} else {
			logger.Info("serving static root", "root", root)
			opts = append(opts, schemeserve.WithStaticRoot(root))
			sources++
		}
	}
	if embedded != nil {
		logger.Info("serving embedded bundle")
		opts = append(opts, schemeserve.WithBundle(embedded))
		sources++
	}
	if sources == 0 {
		logger.Warn("no static assets available, answering all requests with 404")
	}
	return schemeserve.NewResponder(opts...)
}

// newRouter mounts the responder. Different from custom scheme hosts,
// browsers get redirected from the editor landing path to "/", so that
// relative asset references resolve correctly.
func newRouter(responder http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(schemeserve.EditorAlias, func(w http.ResponseWriter, _ *http.Request) {
		schemeserve.SetCommonHeaders(w.Header(), schemeserve.ContentType("txt"))
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusFound)
	})
	r.Handle("/*", responder)
	return r
}

// serve serves the handler on the configured address until the context gets
// cancelled, then shuts down gracefully.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler, logger *log.Logger) error {
	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("serving assets",
		"url", "http://"+ln.Addr().String()+"/",
		"scheme", cfg.RootURL())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	select {
	case err := <-done:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-done; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
