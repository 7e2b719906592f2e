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

package serializer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
	"k8s.io/client-go/rest"

	"github.com/NVIDIA/ccversion/pkg/defaults"
	"github.com/NVIDIA/ccversion/pkg/header"
	"github.com/NVIDIA/ccversion/pkg/k8s/client"
)

// ConfigMapURIScheme prefixes output paths that name a ConfigMap,
// e.g. cm://build-farm/node-a-compilers.
const ConfigMapURIScheme = "cm://"

const fieldManager = "ccversion"

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	getClient func() (client.Interface, *rest.Config, error)
}

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithKubeClient makes the writer use c instead of the discovered client.
func WithKubeClient(c client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.getClient = func() (client.Interface, *rest.Config, error) {
			return c, nil, nil
		}
	}
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
		getClient: client.GetKubeClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize writes data to the ConfigMap using server-side apply.
// The ConfigMap will have:
// - data.report.{yaml|json|txt}: The serialized content
// - data.format: The format used
// - data.timestamp: RFC 3339 timestamp from the report header, or now
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs, config, err := w.getClient()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	slog.Info("configmap operation",
		"namespace", w.namespace,
		"name", w.name,
		"auth_method", client.AuthMethod(config),
		"format", w.format)

	var buf bytes.Buffer
	if err := NewWriter(w.format, &buf).Serialize(writeCtx, data); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	extension := string(w.format)
	if w.format == FormatTable {
		extension = "txt"
	}

	kind, toolVersion, timestamp := "Report", "unknown", time.Now().UTC().Format(time.RFC3339)
	if h, ok := data.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k.String()
		}
		if v := h.GetMetadata()["version"]; v != "" {
			toolVersion = v
		}
		if ts := h.GetMetadata()["timestamp"]; ts != "" {
			timestamp = ts
		}
	}

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "ccversion",
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   labelValue(toolVersion),
		}).
		WithData(map[string]string{
			"report." + extension: buf.String(),
			"format":              string(w.format),
			"timestamp":           timestamp,
		})

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: fieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}

	return nil
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// labelValue makes v a valid label value: at most 63 characters of
// alphanumerics, '-', '_' and '.', starting and ending alphanumeric.
func labelValue(v string) string {
	b := []byte(v)
	for i, c := range b {
		if !isAlnum(c) && c != '-' && c != '_' && c != '.' {
			b[i] = '_'
		}
	}
	if len(b) > 63 {
		b = b[:63]
	}
	s := strings.TrimFunc(string(b), func(r rune) bool {
		return !isAlnum(byte(r))
	})
	if s == "" {
		return "unknown"
	}
	return s
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
