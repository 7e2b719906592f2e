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

package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DetectAll inspects every tool concurrently and returns the detections in
// the order of tools. The first failure cancels the remaining detections
// and is returned.
func (d *Detector) DetectAll(ctx context.Context, tools []Tool) ([]*Detection, error) {
	results := make([]*Detection, len(tools))

	g, gctx := errgroup.WithContext(ctx)
	for i, tool := range tools {
		g.Go(func() error {
			det, err := d.Inspect(gctx, tool)
			if err != nil {
				return err
			}
			results[i] = det
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
