package matrix2d

import (
	"fmt"
)

// ValidateRectangular checks that ss has at least one row, that every row
// has at least one element and that all rows have the same length.
func ValidateRectangular[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if len(ss) == 0 {
		return fmt.Errorf("2d matrix must have at least one row")
	}

	cols := len(ss[0])
	for i, s := range ss {
		if len(s) == 0 {
			return fmt.Errorf("2d matrix row %d is empty", i)
		}
		if len(s) != cols {
			return fmt.Errorf("2d matrix row %d has %d cols, row 0 has %d", i, len(s), cols)
		}
	}
	return nil
}

func IsSquare[Ss ~[]S, S ~[]E, E any](ss Ss) bool {
	if ValidateRectangular(ss) != nil {
		return false
	}
	return len(ss) == len(ss[0])
}

func make2D[Ss ~[]S, S ~[]E, E any](rows, cols int) Ss {
	y := make(Ss, rows)
	for i := range y {
		y[i] = make(S, cols)
	}
	return y
}

// Rotate90 rotates a quarter-turn clockwise.
func Rotate90[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if len(ss) == 0 {
		return Ss{}
	}
	m := len(ss)
	n := len(ss[0])
	rotated := make2D[Ss](n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rotated[j][m-1-i] = ss[i][j]
		}
	}
	return rotated
}

// Rotate180 is the point reflection through the centre.
func Rotate180[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if len(ss) == 0 {
		return Ss{}
	}
	m := len(ss)
	n := len(ss[0])
	rotated := make2D[Ss](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rotated[m-1-i][n-1-j] = ss[i][j]
		}
	}
	return rotated
}

// Rotate270 rotates a quarter-turn counter-clockwise.
func Rotate270[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if len(ss) == 0 {
		return Ss{}
	}
	m := len(ss)
	n := len(ss[0])
	rotated := make2D[Ss](n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rotated[n-1-j][i] = ss[i][j]
		}
	}
	return rotated
}

// RotateQuarter rotates by q clockwise quarter-turns, q in [0, 4).
// q == 0 returns a copy.
func RotateQuarter[Ss ~[]S, S ~[]E, E any](ss Ss, q int) (Ss, error) {
	switch q {
	case 0:
		y := make(Ss, len(ss))
		for i, s := range ss {
			y[i] = append(S(nil), s...)
		}
		return y, nil
	case 1:
		return Rotate90(ss), nil
	case 2:
		return Rotate180(ss), nil
	case 3:
		return Rotate270(ss), nil
	}
	return nil, fmt.Errorf("quarter-turn count must be in [0, 4), got %d", q)
}

func Flatten[Ss ~[]S, S ~[]E, E any](ss Ss) S {
	n := 0
	for _, s := range ss {
		n += len(s)
	}
	y := make(S, 0, n)
	for _, s := range ss {
		y = append(y, s...)
	}
	return y
}
