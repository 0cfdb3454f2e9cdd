package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	M := New(4, 5)
	M.Set(2, 3, 4711)
	M.Set(0, 1, 7)
	M.Set(3, 4, 8)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(1, 1); v != NoValue {
		t.Errorf("expected M(1,1) to be empty, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 occupied cells, have %d", M.ValueCount())
	}
}

func TestAddCompeting(t *testing.T) {
	M := New(2, 2)
	if M.Add(1, 1, 3) {
		t.Errorf("expected first Add to report an empty cell")
	}
	if !M.Add(1, 1, 5) {
		t.Errorf("expected second Add to report an occupied cell")
	}
	a, b := M.Values(1, 1)
	if a != 3 || b != 5 {
		t.Errorf("expected (3,5), have (%d,%d)", a, b)
	}
	if M.Conflicts() != 1 {
		t.Errorf("expected 1 conflict, have %d", M.Conflicts())
	}
	M.Set(1, 1, 9)
	if a, b = M.Values(1, 1); a != 9 || b != NoValue {
		t.Errorf("expected Set to clear the competitor, have (%d,%d)", a, b)
	}
}

func TestEachRowMajor(t *testing.T) {
	M := New(3, 3)
	M.Set(2, 0, 1)
	M.Set(0, 2, 2)
	M.Set(0, 1, 3)
	M.Set(1, 1, 4)
	var order []int32
	M.Each(func(i, j int, a, b int32) {
		order = append(order, a)
	})
	expected := []int32{3, 2, 4, 1}
	for k := range expected {
		if order[k] != expected[k] {
			t.Fatalf("expected row-major order %v, have %v", expected, order)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of the matrix to panic")
		}
	}()
	New(1, 1).Set(1, 0, 1)
}
