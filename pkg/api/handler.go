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

package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/NVIDIA/ccversion/pkg/compiler"
	"github.com/NVIDIA/ccversion/pkg/constraint"
	"github.com/NVIDIA/ccversion/pkg/defaults"
	"github.com/NVIDIA/ccversion/pkg/errors"
	"github.com/NVIDIA/ccversion/pkg/header"
	"github.com/NVIDIA/ccversion/pkg/report"
	"github.com/NVIDIA/ccversion/pkg/serializer"
	"github.com/NVIDIA/ccversion/pkg/server"
	ver "github.com/NVIDIA/ccversion/pkg/version"
)

// Handler serves the ccversion API routes.
type Handler struct {
	detector *compiler.Detector
	tools    []compiler.Tool
	timeout  time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDetector sets the detector used by /v1/detect.
func WithDetector(d *compiler.Detector) HandlerOption {
	return func(h *Handler) {
		h.detector = d
	}
}

// WithTimeout bounds each /v1/detect request.
func WithTimeout(timeout time.Duration) HandlerOption {
	return func(h *Handler) {
		h.timeout = timeout
	}
}

// NewHandler returns a Handler that may detect the given tools.
func NewHandler(tools []compiler.Tool, opts ...HandlerOption) *Handler {
	h := &Handler{
		detector: compiler.NewDetector(),
		tools:    tools,
		timeout:  defaults.DetectHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API routes keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/detect":  h.HandleDetect,
		"/v1/compare": h.HandleCompare,
		"/v1/parse":   h.HandleParse,
	}
}

// HandleDetect handles GET /v1/detect. The "compiler" parameter (repeatable)
// selects allowed compilers by command line; without it every allowed
// compiler is detected. The optional "require" parameter is a version
// constraint reported per detection.
func (h *Handler) HandleDetect(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	start := time.Now()
	defer func() {
		detectDuration.Observe(time.Since(start).Seconds())
	}()

	q := r.URL.Query()

	tools, err := h.selectTools(q["compiler"])
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid compiler", nil)
		return
	}

	var req *constraint.Constraint
	if expr := q.Get("require"); expr != "" {
		if req, err = constraint.Parse(expr); err != nil {
			server.WriteErrorFromErr(w, r, err, "Invalid constraint", nil)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	detections, err := h.detector.DetectAll(ctx, tools)
	if err != nil {
		for _, tool := range tools {
			detectionsTotal.WithLabelValues(tool.Family.String(), resultError).Inc()
		}
		server.WriteErrorFromErr(w, r, err, "Failed to detect compiler version", nil)
		return
	}

	var opts []header.Option
	if id := server.RequestID(r.Context()); id != "" {
		opts = append(opts, header.WithMetadata("requestId", id))
	}

	rep, _ := report.New(detections, req, version, opts...)
	for _, res := range rep.Detections {
		result := resultSuccess
		if res.Satisfied != nil && !*res.Satisfied {
			result = resultUnsatisfied
		}
		detectionsTotal.WithLabelValues(res.Family.String(), result).Inc()
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, rep)
}

// HandleCompare handles GET /v1/compare?a=A&b=B.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	a, err := parseParam(q.Get("a"), "a")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version", nil)
		return
	}
	b, err := parseParam(q.Get("b"), "b")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report.Compare(a, b))
}

// HandleParse handles GET /v1/parse?version=V.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	input := r.URL.Query().Get("version")
	parsed, err := report.Parse(input)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid version", false, map[string]any{
				"version": input,
				"error":   err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, parsed)
}

func (h *Handler) selectTools(names []string) ([]compiler.Tool, error) {
	if len(names) == 0 {
		return h.tools, nil
	}

	allowed := make([]string, 0, len(h.tools))
	for _, tool := range h.tools {
		allowed = append(allowed, toolName(tool))
	}

	tools := make([]compiler.Tool, 0, len(names))
	for _, name := range names {
		i := slices.Index(allowed, name)
		if i < 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"compiler is not allowed", map[string]any{
					"compiler": name,
					"allowed":  allowed,
				})
		}
		tools = append(tools, h.tools[i])
	}
	return tools, nil
}

func parseParam(value, name string) (ver.Version, error) {
	v, err := ver.Parse(value)
	if err != nil {
		return ver.Version{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid version", err, map[string]any{"param": name, "value": value})
	}
	return v, nil
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}
