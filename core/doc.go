// Package core contains the business logic for the News Content API.
// It does not depend on the HTTP layer and can be used on its own.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Page, ArticleContent, ReaderView, Preview)
// - extractor: Heuristic article body extraction over a parsed HTML tree
// - content: Fetch, extract, cache and convert article bodies
// - reader: Readability views with markdown renditions
// - preview: Open Graph link previews
// - errors: Error types separating bad input, upstream and transport failures
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - The extractor is pure: a document in, a fragment out
// - Business logic is testable in isolation with mock dependencies
//
// # Usage Example
//
//	import (
//	    "newsfeed-api/core/content"
//	    "newsfeed-api/core/extractor"
//	    "newsfeed-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := content.NewService(deps, extractor.NewDefault(), content.Config{})
//
//	article, err := svc.Extract(ctx, "https://example.com/news/story", "markdown")
package core
