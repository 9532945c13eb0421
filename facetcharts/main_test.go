// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/plotbook/plotbook/dataset"
)

func TestRevenuePlotKinds(t *testing.T) {
	for _, kind := range []string{"bar", "step", "area"} {
		plot, err := revenuePlot(dataset.Quarters(), kind)
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		var buf bytes.Buffer
		if err := plot.WriteSVG(&buf, 800, 300); err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if buf.Len() == 0 {
			t.Errorf("kind %q: empty SVG output", kind)
		}
	}
}

func TestRevenuePlotUnknownKind(t *testing.T) {
	if _, err := revenuePlot(dataset.Quarters(), "pie"); err == nil {
		t.Error("unknown kind: got nil error")
	}
}
