package terminal

import "testing"

func TestColumnsThatFit(t *testing.T) {
	cases := []struct {
		width, cols, cellWidth, want int
	}{
		{80, 50, 2, 40},
		{80, 30, 2, 30},
		{1, 10, 2, 1},
		{80, 0, 2, 0},
		{10, 20, 0, 10},
	}
	for _, c := range cases {
		if got := ColumnsThatFit(c.width, c.cols, c.cellWidth); got != c.want {
			t.Errorf("ColumnsThatFit(%d, %d, %d) = %d, want %d", c.width, c.cols, c.cellWidth, got, c.want)
		}
	}
}
