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
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// IndexFile is the name of the document served for directory and root paths.
const IndexFile = "index.html"

// ErrRejected signals a request path that is malformed or tries to escape
// its asset source. A rejected path must never be retried against other
// sources.
var ErrRejected = errors.New("request path rejected")

// Asset is a static asset found by a Provider, together with its relative
// name that determines its content type.
type Asset struct {
	Name string // slash-separated name of the asset inside its source.
	Body []byte // verbatim asset contents.
}

// ContentType returns the Content-Type header value for this asset.
func (a *Asset) ContentType() string { return ContentType(path.Ext(a.Name)) }

// MimeType returns the bare MIME type for this asset, without any charset.
func (a *Asset) MimeType() string { return MimeType(path.Ext(a.Name)) }

// Provider supplies static assets for (rooted) request paths. TryGet returns a
// nil Asset and a nil error if it simply doesn't have the requested asset. It
// returns an error wrapping ErrRejected for malformed or escaping request
// paths, and any other error for I/O failures on assets it knows to exist.
//
// Providers must be safe for concurrent use.
type Provider interface {
	TryGet(reqPath string) (*Asset, error)
}

// DirProvider serves static assets from a directory on the OS file system,
// which acts as the sandbox boundary: no request path ever resolves to a
// location outside its static root. A DirProvider without a static root, such
// as the zero value, never has any assets.
type DirProvider struct {
	// absolute path of the static root directory.
	root string
	// reads existing assets; nil means os.ReadFile.
	readFile func(string) ([]byte, error)
}

var _ Provider = (*DirProvider)(nil)

// NewDirProvider returns a Provider serving from the specified static root
// directory. A relative root is made absolute based on the current working
// directory at the time of calling NewDirProvider; an empty root results in a
// provider never having any assets, instead of serving the current working
// directory.
func NewDirProvider(root string) *DirProvider {
	if root == "" {
		return &DirProvider{}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}
	return &DirProvider{root: abs}
}

// Root returns the absolute path of the static root directory, or "" if there
// is none.
func (p *DirProvider) Root() string { return p.root }

// TryGet implements Provider.
func (p *DirProvider) TryGet(reqPath string) (*Asset, error) {
	if p.root == "" {
		return nil, nil
	}
	filePath, ok := SafeResolve(p.root, reqPath)
	if !ok {
		return nil, fmt.Errorf("static root: %w", ErrRejected)
	}
	info, err := os.Stat(filePath)
	if err == nil && info.IsDir() {
		filePath = filepath.Join(filePath, IndexFile)
		info, err = os.Stat(filePath)
	}
	if err != nil || info.IsDir() {
		return nil, nil
	}
	readFile := p.readFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	body, err := readFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("static root: cannot read asset: %w", err)
	}
	name, err := filepath.Rel(p.root, filePath)
	if err != nil {
		name = filepath.Base(filePath)
	}
	return &Asset{Name: filepath.ToSlash(name), Body: body}, nil
}

// FSProvider serves static assets from a read-only fs.FS, such as an
// embed.FS baked into the binary at build time. The zero value never has any
// assets.
type FSProvider struct {
	fs fs.FS
}

var _ Provider = (*FSProvider)(nil)

// NewFSProvider returns a Provider serving from the specified fs. In order to
// serve an embedded subdirectory, use fs.Sub:
//
//	//go:embed build
//	var assets embed.FS
//	bundle, _ := fs.Sub(assets, "build")
//	p := NewFSProvider(bundle)
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fs: fsys}
}

// TryGet implements Provider.
func (p *FSProvider) TryGet(reqPath string) (*Asset, error) {
	if p.fs == nil {
		return nil, nil
	}
	name, ok := relativeAssetPath(reqPath)
	if !ok {
		return nil, fmt.Errorf("bundle: %w", ErrRejected)
	}
	if name == "" {
		name = IndexFile
	}
	// fs.Stat gracefully works around fs.FS implementations not supporting
	// fs.StatFS. Directories don't count as hits.
	info, err := fs.Stat(p.fs, name)
	if err != nil || info.IsDir() {
		return nil, nil
	}
	body, err := fs.ReadFile(p.fs, name)
	if err != nil {
		return nil, fmt.Errorf("bundle: cannot read asset: %w", err)
	}
	return &Asset{Name: name, Body: body}, nil
}
