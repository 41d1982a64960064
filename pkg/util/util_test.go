package util

import "testing"

func TestInPlaceFilter(t *testing.T) {
	values := []int{10, 25, 40, 5}

	InPlaceFilter(&values, func(v int) bool { return v < 30 })

	if len(values) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(values))
	}
	for index, expected := range []int{10, 25, 5} {
		if values[index] != expected {
			t.Errorf("Expected %d at position %d, got %d", expected, index, values[index])
		}
	}
}

func TestPluralise(t *testing.T) {
	if suffix := Pluralise(1); suffix != "" {
		t.Errorf("Expected no suffix for 1, got %q", suffix)
	}
	if suffix := Pluralise(2); suffix != "s" {
		t.Errorf("Expected s for 2, got %q", suffix)
	}
}
