// Package api implements the HTTP client for the Lingora translation API.
//
// All calls funnel through Client.Do, which owns admission control (a
// bounded semaphore limiting in-flight requests), body encoding (JSON or
// multipart form data when files are attached), retry with exponential
// backoff for connection-level failures, and classification of non-2xx
// responses into typed errors.
package api
