// Package compiler detects the version of a native C/C++ compiler.
//
// # Overview
//
// A Tool describes a compiler that was found by the caller (see
// pkg/toolchain): its executable, wrapper arguments, environment and
// Family. The Detector runs the family's version query and parses the
// result into a version.Version.
//
// # Families
//
//   - GNU and Clang: "<compiler> -dumpversion" prints the bare version on stdout.
//   - MSVC: "cl" with no arguments prints an identification banner on stderr,
//     for example "Microsoft(R) C/C++ Optimizing Compiler Version 19.16.27027.1 for x64".
//     The exit status of cl is not checked.
//   - Unknown: rejected with ErrCodeUnknownCompiler before any process starts.
//
// # Usage
//
//	tool, err := toolchain.FromEnv()
//	if err != nil {
//	    return err
//	}
//	v, err := compiler.NewDetector().Detect(ctx, tool)
//	if err != nil {
//	    return err
//	}
//	if v.Less(version.MustParse("9")) {
//	    // older compilers need -std=gnu++17 spelled out
//	}
//
// # Errors
//
// All failures are *errors.StructuredError values from pkg/errors:
//
//   - ErrCodeCommandFailed: the process could not be started or waited on
//   - ErrCodeParseFailed: the reported text is not a dotted version
//   - ErrCodeBannerFormat: the MSVC banner lacks the "Version " or " for " marker
//   - ErrCodeUnknownCompiler: the tool's family is not supported
//
// # Concurrency
//
// A Detector holds no mutable state and each call owns its own process, so
// Detect may be called from multiple goroutines. DetectAll runs one
// detection per tool concurrently. The Detector applies no timeout of its
// own; cancel the context to stop a hung compiler.
package compiler
