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

package defaults

import "time"

// Detection timeouts applied by the CLI. The compiler package itself never
// imposes a timeout; callers decide through the context they pass.
const (
	// DetectTimeout is the default time allowed for a single compiler to
	// report its version. cl.exe on a cold Windows runner can take several
	// seconds before printing its banner.
	DetectTimeout = 30 * time.Second

	// MaxDetectTimeout caps user supplied --timeout values.
	MaxDetectTimeout = 10 * time.Minute
)

// Server timeouts for the ccversiond HTTP server.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// It must cover DetectHandlerTimeout.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// DetectHandlerTimeout bounds a single /v1/detect request.
	DetectHandlerTimeout = 45 * time.Second
)

// Kubernetes API timeouts.
const (
	// ConfigMapWriteTimeout bounds publishing a report to a ConfigMap.
	ConfigMapWriteTimeout = 30 * time.Second
)

// CLI defaults.
const (
	// OutputFormat is the report format used when --format is not set.
	OutputFormat = "yaml"

	// Compiler is the command used when neither --cc nor CC is set.
	Compiler = "cc"
)
