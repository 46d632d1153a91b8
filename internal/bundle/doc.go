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

/*
Package bundle provides the optional embedded asset bundle of assetserve.

Release builds copy the static assets into the dist directory and then build
with the "embedassets" tag:

	cp -r build/. internal/bundle/dist/
	go build -tags embedassets ./cmd/assetserve

Without this tag, Bundle returns nil and only the on-disk static root serves
requests.
*/
package bundle
