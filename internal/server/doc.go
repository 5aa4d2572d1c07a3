// Package server provides HTTP routing, middleware, and the request handlers
// for the gameshelf backend.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Handlers
//
// Each handler struct covers one area of the API surface and registers its own
// routes:
//
//   - [StoreHandler] : catalog browsing, the lean games listing, and title detail
//   - [AuthHandler] : profile listing, sign-up and sign-in (both seed the library)
//   - [LibraryHandler] : per-user library reads and explicit writes
//   - [SocialHandler] : friends, channels, membership, and messages
//   - [DebugHandler] : catalog credential status introspection
//
// Handlers degrade per the catalog layer's failure policy: browse and detail
// endpoints always answer 200 with empty or placeholder payloads when the
// provider is unreachable, while explicit store writes surface failures.
package server
