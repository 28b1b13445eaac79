// Package server provides HTTP routing, middleware, and the tour feed endpoints.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Endpoints
//
//	GET /api/tour  → tour feed envelope (200 on success, 500 with an empty list on failure)
//	GET /healthz   → liveness probe
//	GET /metrics   → Prometheus exposition
//
// The tour feed is never cached: each request triggers one fetch of the published sheet and the
// response is marked Cache-Control: no-store.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
