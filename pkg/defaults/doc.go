// Package defaults provides centralized configuration constants for ccversion.
//
// # Categories
//
//   - Detection timeouts: per-run limits applied by the CLI
//   - Server timeouts: HTTP server configuration for ccversiond
//   - Kubernetes timeouts: publishing reports to ConfigMaps
//   - CLI defaults: output format and fallback compiler
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.DetectTimeout)
//	defer cancel()
//	v, err := compiler.NewDetector().Detect(ctx, tool)
package defaults
