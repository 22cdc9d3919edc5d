// Package server exposes the recommendation engine over HTTP.
//
// It provides POST /v1/recommend, which runs the full query pipeline
// and returns up to top_k assessments with human-readable test-type
// labels, and GET /healthz for liveness checks.
package server
