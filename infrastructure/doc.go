// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client, single attempt per request
// - logger/logrus: Structured logger backed by logrus
//
// # HTTP Client
//
// The HTTP client performs exactly one attempt per request; fallback across
// relay proxies is handled by the core fetch package:
//
//	client := standard.NewStandardHTTPClient(10 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Refresh completed", map[string]interface{}{
//	    "articles": 40,
//	    "sources":  5,
//	})
package infrastructure
