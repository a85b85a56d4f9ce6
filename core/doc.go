// Package core contains the business logic for the AI Pulse API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FeedSource, Article, Snapshot, fallback list)
// - fetch: Proxy fetcher retrieving raw feed bodies through CORS relays
// - feed: RSS 2.0 / Atom parsing and article normalization
// - pulse: Aggregation, sorting, deduplication, and snapshot state
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Failure of one feed source never affects another
//
// # Usage Example
//
//	import (
//	    "aipulse-api/core/fetch"
//	    "aipulse-api/core/interfaces"
//	    "aipulse-api/core/pulse"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	fetcher := fetch.NewClient(deps, fetch.DefaultProxies(), fetch.DefaultTimeout)
//	service := pulse.NewService(deps, fetcher, nil)
//
//	snapshot := service.Refresh(ctx)
package core
