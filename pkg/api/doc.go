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

// Package api wires the ccversion HTTP API on top of pkg/server.
//
// # Usage
//
//	if err := api.Serve(ctx); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/detect  - Detect allowed compilers and return a DetectionReport
//   - GET /v1/compare - Compare two versions
//   - GET /v1/parse   - Show the components of a version
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// GET /v1/detect:
//   - compiler: command line of an allowed compiler; repeatable; all allowed compilers if omitted
//   - require: version constraint such as ">= 9.1"; each detection reports "satisfied"
//
// GET /v1/compare:
//   - a, b: versions to compare; the response carries result (-1, 0, 1) and relation
//
// GET /v1/parse:
//   - version: version to parse
//
// Example:
//
//	curl "http://localhost:8080/v1/detect?compiler=gcc&require=%3E%3D%209.1"
//
// # Configuration
//
// The server is configured via environment variables:
//   - CCVERSION_ALLOWED_COMPILERS: comma separated compiler command lines the API may run (default: $CC or cc)
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Clients select compilers by name only and can never make the server run an
// arbitrary command.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/ccversion/pkg/api.version=1.0.0'"
package api
