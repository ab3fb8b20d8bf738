// Copyright 2025 Graft ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/graft-ml/graft/tensor"
)

// TestValueContract verifies both shipped value types satisfy Value.
func TestValueContract(_ *testing.T) {
	var _ tensor.Value[tensor.Scalar] = tensor.Scalar(0)
	var _ tensor.Value[tensor.Tensor] = tensor.Tensor{}
}

func TestPublicAPI(t *testing.T) {
	a := tensor.Ones(tensor.Shape{2, 2})
	b := tensor.Full(tensor.Shape{2, 2}, 3)

	c := a.Add(b)
	for i, v := range c.Data() {
		if v != 4 {
			t.Errorf("Add element %d = %v, want 4", i, v)
		}
	}

	m, err := tensor.FromSlice([]float64{1, 0, 0, 1}, tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	p := tensor.MatMul(m, b)
	for i, v := range p.Data() {
		if v != 3 {
			t.Errorf("MatMul element %d = %v, want 3", i, v)
		}
	}
}
