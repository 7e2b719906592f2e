// Package header provides the common header of ccversion reports.
//
// Every report starts with a Kind, an APIVersion and metadata so consumers
// can check the schema before reading the rest:
//
//	kind: DetectionReport
//	apiVersion: ccversion.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2026-01-15T10:30:00Z"
//	  version: v1.0.0
//
// Consumers should reject an APIVersion they do not know.
package header
