package slice

import "testing"

func TestReverseInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4}
	ReverseInPlace(s)
	if Compare(s, []int{4, 3, 2, 1}) != 0 {
		t.Errorf("reversed slice is %v", s)
	}

	single := []string{"a"}
	ReverseInPlace(single)
	if single[0] != "a" {
		t.Errorf("single element slice changed: %v", single)
	}
}

func TestContains(t *testing.T) {
	s := []int{2, 4, 6}
	if !Contains(s, 4) {
		t.Errorf("slice should contain 4")
	}
	if Contains(s, 5) {
		t.Errorf("slice should not contain 5")
	}
}

func TestCompare(t *testing.T) {
	if Compare([]int{1, 2}, []int{1, 2, 3}) != -1 {
		t.Errorf("different lengths should compare to -1")
	}
	if Compare([]int{1, 2, 3}, []int{1, 0, 0}) != 2 {
		t.Errorf("expected 2 differences")
	}
	if Compare([]int{}, []int{}) != 0 {
		t.Errorf("empty slices should be equal")
	}
}
