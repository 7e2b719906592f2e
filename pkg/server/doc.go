// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP server behind ccversiond.
//
// The server is generic: callers register routes with WithHandler and every
// registered route is wrapped in the same middleware chain.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, github.com/google/uuid)
//   - API version negotiation via the Accept header
//   - Panic recovery
//   - Prometheus RED metrics on /metrics
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("ccversiond"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/detect": h.HandleDetect,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
//	GET /         - server name, version and routes
//	GET /health   - liveness probe
//	GET /ready    - readiness probe, 503 until the listener is up
//	GET /metrics  - Prometheus metrics
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. The body is
// an ErrorResponse:
//
//	{
//	  "code": "COMMAND_FAILED",
//	  "message": "failed to run compiler",
//	  "details": {"command": "gcc -dumpversion", "error": "exec: \"gcc\": executable file not found in $PATH"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-06-01T12:00:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
//	PORT                      Listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown timeout (default 30)
package server
