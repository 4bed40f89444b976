package engine

import "fmt"

// MatrixDepth is the number of collision layers.
const MatrixDepth = 8

// LayerPair is one enabled (A, B) layer combination with A <= B.
type LayerPair struct {
	A, B int
}

// CollisionMatrix says which layers collide. Row i is a bitmask over layers:
// bit j set enables the pair (i, j). Only bits j >= i are consulted, so each
// unordered pair is read from the row of its lower layer.
type CollisionMatrix struct {
	rows [MatrixDepth]uint8
}

// NewCollisionMatrix builds a matrix from up to MatrixDepth rows; missing
// rows are zero.
func NewCollisionMatrix(rows []int) (CollisionMatrix, error) {
	var m CollisionMatrix
	if len(rows) > MatrixDepth {
		return m, &ConfigurationError{
			Field:  "collision matrix",
			Reason: fmt.Sprintf("%d rows, at most %d supported", len(rows), MatrixDepth),
		}
	}
	for i, row := range rows {
		if row < 0 || row >= 1<<MatrixDepth {
			return m, &ConfigurationError{
				Field:  "collision matrix",
				Reason: fmt.Sprintf("row %d = %#b has bits outside %d layers", i, row, MatrixDepth),
			}
		}
		m.rows[i] = uint8(row)
	}
	return m, nil
}

// Enabled reports whether row i has bit j set.
func (m CollisionMatrix) Enabled(i, j int) bool {
	if i < 0 || i >= MatrixDepth || j < 0 || j >= MatrixDepth {
		return false
	}
	return m.rows[i]&(1<<j) != 0
}

// Pairs lists the enabled layer pairs in sweep order.
func (m CollisionMatrix) Pairs() []LayerPair {
	var pairs []LayerPair
	for i := 0; i < MatrixDepth; i++ {
		for j := i; j < MatrixDepth; j++ {
			if m.Enabled(i, j) {
				pairs = append(pairs, LayerPair{A: i, B: j})
			}
		}
	}
	return pairs
}

// Rows returns all MatrixDepth rows.
func (m CollisionMatrix) Rows() []int {
	out := make([]int, MatrixDepth)
	for i, r := range m.rows {
		out[i] = int(r)
	}
	return out
}
