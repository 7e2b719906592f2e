// Package cli implements the command-line interface for the ccversion tool.
//
// # Overview
//
// ccversion asks a C/C++ compiler for its version the way a build script
// would, and prints the parsed version so builds can gate features or pick
// flags on it.
//
// # Commands
//
// detect - Detect compiler versions:
//
//	ccversion detect [--cc CMD ...] [--cxx] [--family gnu|clang|msvc] [--require EXPR] [--timeout D]
//
// GNU and Clang compilers are queried with -dumpversion. MSVC is queried by
// running cl and reading the banner it prints to stderr. Without --cc the
// compiler comes from $CC (or $CXX with --cxx), else cc (cl on Windows).
// With --require the command fails when any detected version does not
// satisfy the constraint; the report is still written.
//
// compare - Compare two dotted versions:
//
//	ccversion compare 9.1 10
//
// parse - Show the components of a dotted version:
//
//	ccversion parse 19.16.27027 --format json
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// detect and parse also accept:
//
//	--output, -o   Output file path or cm://namespace/name ConfigMap (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	CC, CXX            Compiler command line used when --cc is not set
//	CCVERSION_CC       Same as --cc
//	CCVERSION_FAMILY   Same as --family
//	CCVERSION_TIMEOUT  Same as --timeout
//	CCVERSION_FORMAT   Same as --format
//	LOG_LEVEL          Same as --log-level
//
// # Exit Codes
//
//	0  Success
//	1  Every compiler was detected but at least one fails --require
//	2  Usage error, detection failure, timeout or interrupt
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/ccversion/pkg/cli.version=1.0.0'"
package cli
