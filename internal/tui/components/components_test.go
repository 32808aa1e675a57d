package components

import "testing"

func TestSplitRow_SumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{70, 3},
		{7, 2},
	}
	for _, tc := range cases {
		widths := SplitRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Errorf("SplitRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
			continue
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("SplitRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		// No width may be more than one column wider than another.
		for _, w := range widths {
			if w < widths[tc.n-1] || w > widths[0] {
				t.Errorf("SplitRow(%d, %d) = %v, uneven distribution", tc.total, tc.n, widths)
				break
			}
		}
	}
}

func TestSplitRow_ZeroItems(t *testing.T) {
	if got := SplitRow(100, 0); got != nil {
		t.Errorf("SplitRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
