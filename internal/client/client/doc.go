// Package client provides the transport layer between the profile editor and
// the Freshers Intro backend.
//
// # Overview
//
// The Client interface covers the four collaborator endpoints the editor is
// allowed to call: profile read, profile write, the presign broker, and raw
// image fetch (used to prime the local store from already-uploaded photos).
// HTTPClient is the production implementation over net/http; tests provide
// fakes by embedding the interface.
//
// The package also wires up the client's local SQLite database (InitDatabase)
// shared by the staged-image store and the draft cache.
//
// Key Types
//
//   - type Client        — transport interface used by the draft service
//   - type HTTPClient    — REST implementation with cookie session auth
//   - type Repositories  — bundle of local persistence repositories
//
// See also: internal/client/services for the draft controller that consumes
// this package.
package client
