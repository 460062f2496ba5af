package tensor

import "testing"

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	checks := []struct {
		got, want DataType
	}{
		{DataTypeOf[float32](), Float32},
		{DataTypeOf[float64](), Float64},
		{DataTypeOf[int32](), Int32},
		{DataTypeOf[int64](), Int64},
		{DataTypeOf[uint8](), Uint8},
		{DataTypeOf[bool](), Bool},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("DataTypeOf = %s, want %s", c.got, c.want)
		}
	}

	if !Float64.IsFloat() || Int32.IsFloat() {
		t.Error("IsFloat() misclassifies types")
	}
	if DataType(99).String() != "unknown" {
		t.Errorf("String() for unknown type = %q", DataType(99).String())
	}
}
