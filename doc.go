/*

Package schemeserve resolves requests for an application-internal URL scheme
to static assets, such as a "Single Page Application" (SPA) together with its
scripts, styles, and WebAssembly modules. And all this without ever letting a
request path escape the static assets' root directory.

The Responder type answers requests by querying an ordered chain of Provider
implementations, where the first provider having the requested asset wins.
DirProvider serves from a static root directory on disk, while FSProvider
serves from any fs.FS, such as an embed.FS baked into the binary. Request paths
matching no asset are answered with the index document instead, whenever the
client accepts HTML; this keeps client-side DOM routing working.

Hosts with native custom scheme support call Responder.Serve with their
request and convert the returned Response. Responder additionally implements
http.Handler, so the very same chain can be served over a loopback HTTP
server.

*/
package schemeserve
