package locate_test

import (
	"slices"
	"testing"

	"github.com/sw965/blockrot/locate"
	"github.com/sw965/blockrot/tensor"
)

func mustD2(t *testing.T, xss [][]int) *tensor.Dense[int] {
	t.Helper()
	d, err := tensor.NewD2(xss)
	if err != nil {
		t.Fatalf("NewD2: %v", err)
	}
	return d
}

func mustD3(t *testing.T, xsss [][][]int) *tensor.Dense[int] {
	t.Helper()
	d, err := tensor.NewD3(xsss)
	if err != nil {
		t.Fatalf("NewD3: %v", err)
	}
	return d
}

func coords(ps []locate.Placement) [][]int {
	y := make([][]int, len(ps))
	for i, p := range ps {
		y[i] = p.Coord
	}
	return y
}

func equalCoords(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool {
		return slices.Equal(x, y)
	})
}

// 全ての配置で、切り出した領域がパターンと一致する
func assertPlacementsMatch(t *testing.T, array, pattern *tensor.Dense[int], ps []locate.Placement) {
	t.Helper()
	for _, p := range ps {
		view, err := array.View(p.Region)
		if err != nil {
			t.Errorf("placement %v: %v", p.Coord, err)
			continue
		}
		if !slices.Equal(view.Flatten(), pattern.Data) {
			t.Errorf("placement %v: want: %v, got: %v", p.Coord, pattern.Data, view.Flatten())
		}
	}
}

func TestLocate3D(t *testing.T) {
	array := mustD3(t, [][][]int{
		{{5, 2, 5, 0}, {4, 5, 6, 0}, {7, 8, 9, 0}},
		{{0, 0, 0, 0}, {1, 5, 6, 0}, {1, 8, 9, 5}},
	})
	pattern := mustD2(t, [][]int{{5, 6}, {8, 9}})

	ps := locate.Locate(array, pattern)
	want := [][]int{{0, 1, 1}, {1, 1, 1}}
	if got := coords(ps); !equalCoords(got, want) {
		t.Fatalf("want: %v, got: %v", want, got)
	}

	wantRegion := tensor.Region{{Start: 0, Stop: 1}, {Start: 1, Stop: 3}, {Start: 1, Stop: 3}}
	if !slices.Equal(ps[0].Region, wantRegion) {
		t.Errorf("want: %v, got: %v", wantRegion, ps[0].Region)
	}
	assertPlacementsMatch(t, array, pattern, ps)

	first, ok := locate.First(array, pattern)
	if !ok || !slices.Equal(first.Coord, []int{0, 1, 1}) {
		t.Errorf("First: want: [0 1 1], got: %v (ok=%v)", first.Coord, ok)
	}
	if got := locate.Count(array, pattern); got != 2 {
		t.Errorf("Count: want: 2, got: %d", got)
	}
}

func TestLocate4D(t *testing.T) {
	array, err := tensor.NewD4([][][][]int{
		{
			{{5, 2, 5, 0}, {4, 5, 6, 0}, {7, 8, 1, 0}},
			{{0, 0, 0, 0}, {0, 5, 6, 0}, {0, 8, 9, 0}},
		},
		{
			{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 5}},
			{{0, 0, 5, 6}, {0, 0, 8, 9}, {0, 0, 0, 0}},
		},
	})
	if err != nil {
		t.Fatalf("NewD4: %v", err)
	}
	pattern := mustD2(t, [][]int{{5, 6}, {8, 9}})

	ps := locate.Locate(array, pattern)
	want := [][]int{{0, 1, 1, 1}, {1, 1, 0, 2}}
	if got := coords(ps); !equalCoords(got, want) {
		t.Fatalf("want: %v, got: %v", want, got)
	}

	leading := make([][]int, len(ps))
	for i, p := range ps {
		leading[i] = p.Coord[:2]
	}
	if !equalCoords(leading, [][]int{{0, 1}, {1, 1}}) {
		t.Errorf("want leading: [[0 1] [1 1]], got: %v", leading)
	}
	assertPlacementsMatch(t, array, pattern, ps)
}

func TestLocateInvalidPattern(t *testing.T) {
	array := mustD3(t, [][][]int{
		{{5, 6}, {8, 9}},
	})
	d3Pattern := mustD3(t, [][][]int{{{5}}})
	d1Pattern, err := tensor.New([]int{2}, []int{5, 6})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d1Array, err := tensor.New([]int{4}, []int{5, 6, 8, 9})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name    string
		array   *tensor.Dense[int]
		pattern *tensor.Dense[int]
	}{
		{name: "準正常_3次元パターン", array: array, pattern: d3Pattern},
		{name: "準正常_1次元パターン", array: array, pattern: d1Pattern},
		{name: "準正常_配列より次元が多い", array: d1Array, pattern: mustD2(t, [][]int{{5, 6}})},
		{name: "準正常_nilパターン", array: array, pattern: nil},
		{name: "準正常_nil配列", array: nil, pattern: mustD2(t, [][]int{{5}})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := locate.Locate(tc.array, tc.pattern); len(got) != 0 {
				t.Errorf("want empty, got: %v", coords(got))
			}
			if _, ok := locate.First(tc.array, tc.pattern); ok {
				t.Errorf("First: want not found")
			}
		})
	}
}

func TestLocateEdges(t *testing.T) {
	tests := []struct {
		name    string
		array   [][]int
		pattern [][]int
		want    [][]int
	}{
		{
			name:    "正常_2次元配列",
			array:   [][]int{{1, 2, 3}, {4, 5, 6}},
			pattern: [][]int{{2, 3}, {5, 6}},
			want:    [][]int{{0, 1}},
		},
		{
			name:    "正常_重なる配置も全て返す",
			array:   [][]int{{1, 1, 1}, {1, 1, 1}},
			pattern: [][]int{{1, 1}, {1, 1}},
			want:    [][]int{{0, 0}, {0, 1}},
		},
		{
			name:    "準正常_端からはみ出す候補は除外",
			array:   [][]int{{0, 0, 0}, {0, 0, 7}},
			pattern: [][]int{{7, 7}, {7, 7}},
			want:    [][]int{},
		},
		{
			name:    "準正常_パターンが配列より大きい",
			array:   [][]int{{1, 2}},
			pattern: [][]int{{1, 2}, {3, 4}},
			want:    [][]int{},
		},
		{
			name:    "準正常_一致なし",
			array:   [][]int{{1, 2}, {3, 4}},
			pattern: [][]int{{1, 3}},
			want:    [][]int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			array := mustD2(t, tc.array)
			pattern := mustD2(t, tc.pattern)
			ps := locate.Locate(array, pattern)
			if got := coords(ps); !equalCoords(got, tc.want) {
				t.Errorf("want: %v, got: %v", tc.want, got)
			}
			assertPlacementsMatch(t, array, pattern, ps)
		})
	}
}

func TestLocateFloatExact(t *testing.T) {
	array, err := tensor.New([]int{1, 3}, []float64{0.1, 0.2, 0.1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pattern, err := tensor.NewD2([][]float64{{0.1, 0.2 + 1e-12}})
	if err != nil {
		t.Fatalf("NewD2: %v", err)
	}
	if got := locate.Locate(array, pattern); len(got) != 0 {
		t.Errorf("want no match without tolerance, got: %v", coords(got))
	}
}
