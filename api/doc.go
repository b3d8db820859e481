// Package api provides the HTTP API layer for the News Content API.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging and per-client rate limiting
//
// # Endpoints
//
//	GET  /news/content?url=&format=   main article body as html or markdown
//	POST /news/content/batch          several article bodies
//	GET  /news/reader?url=            readability view
//	POST /news/reader/batch           several readability views
//	GET  /news/preview?url=           Open Graph link preview
//	GET  /health                      liveness
//
// The OpenAPI spec is served at /openapi.json and interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewContentHandler(contentService, flags, 20).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 500,
//	    "title": "Internal Server Error",
//	    "detail": "Failed to retrieve content"
//	}
//
// Bad input maps to 400. A page that cannot be fetched, or answers with a
// non-2xx status, maps to 500 with the detail shown above.
package api
