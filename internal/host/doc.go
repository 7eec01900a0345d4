// Package host abstracts the capabilities the report renderer borrows from
// its surroundings: handing a finished document to the user, opening a
// print view, storing artifacts behind one-time locators, and reading the
// clock.
//
// This package contains the following main pieces:
//   - ArtifactStore: In-memory blob store keyed by opaque one-time locators
//   - Saver: Save-as port with file-system and in-memory implementations
//   - SurfaceOpener/PrintSurface: Print view ports with a viewer-command
//     implementation for desktop environments
//   - Clock: Time source so document rendering stays deterministic in tests
//
// Design decision: Host capabilities are interfaces rather than concrete
// calls because:
// 1. The renderer must report a typed UnavailableError when a capability is
//    absent instead of failing silently
// 2. Headless environments (tests, CI, servers) swap in memory-backed
//    implementations without touching the rendering code
// 3. New hosts (GUI shells, remote agents) only implement small ports
package host
