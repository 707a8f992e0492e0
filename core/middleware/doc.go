// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// codegap handlers.
//
// # Components
//
//   - auth: API key validation on the X-API-Key header, protecting the
//     report endpoints. Disabled when no key is configured.
//   - rayid: a per-request ID taken from the X-Ray-ID request header or
//     generated, stored in locals under "ray_id" and echoed in the response
//     header. logger.WithRayID reads it back for log correlation.
//
// # Order
//
// rayid is registered first so every later log line, including auth
// rejections, carries the ID.
package middleware
