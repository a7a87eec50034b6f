// pkg/physics/vector_test.go
package physics

import "testing"

func TestVector_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector
		v2       Vector
		expected Vector
	}{
		{
			name:     "positive_vectors",
			v1:       Vector{X: 3, Y: 4},
			v2:       Vector{X: 1, Y: 2},
			expected: Vector{X: 4, Y: 6},
		},
		{
			name:     "negative_vectors",
			v1:       Vector{X: -3, Y: -4},
			v2:       Vector{X: -1, Y: -2},
			expected: Vector{X: -4, Y: -6},
		},
		{
			name:     "zero_vector",
			v1:       Vector{},
			v2:       Vector{X: 5, Y: -3},
			expected: Vector{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.v1.Add(tt.v2); result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector_Scale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		factor   int
		expected Vector
	}{
		{"unit_right", Vector{X: 1}, 7, Vector{X: 7}},
		{"unit_left", Vector{X: -1}, 7, Vector{X: -7}},
		{"diagonal", Vector{X: 1, Y: 1}, 5, Vector{X: 5, Y: 5}},
		{"zero_factor", Vector{X: 3, Y: 4}, 0, Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.v.Scale(tt.factor); result != tt.expected {
				t.Errorf("Scale(%d) = %v, expected %v", tt.factor, result, tt.expected)
			}
		})
	}
}

func TestVector_IsZero(t *testing.T) {
	if !(Vector{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if (Vector{Y: 1}).IsZero() {
		t.Error("non-zero vector should not report IsZero")
	}
}
