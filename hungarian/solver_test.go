// SPDX-License-Identifier: MIT

package hungarian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrix"
)

// U is a short alias for the sentinel in expectation tables.
const U = hungarian.Unassigned

// TestSolve_CanonicalScenarios pins exact assignments and totals.
func TestSolve_CanonicalScenarios(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]float64
		want  []int
		cost  float64
	}{
		{
			name: "3x3 fractional",
			costs: [][]float64{
				{4, 1.5, 4},
				{4, 4.5, 6},
				{3, 2.25, 3},
			},
			want: []int{1, 0, 2},
			cost: 8.5,
		},
		{
			name: "3x3 decimals",
			costs: [][]float64{
				{1.0, 1.0, 0.8},
				{0.9, 0.8, 0.1},
				{0.9, 0.7, 0.4},
			},
			want: []int{0, 2, 1},
			cost: 1.8,
		},
		{
			name: "4x4",
			costs: [][]float64{
				{6, 0, 7, 5},
				{2, 6, 2, 6},
				{2, 7, 2, 1},
				{9, 4, 7, 1},
			},
			want: []int{1, 0, 2, 3},
			cost: 5,
		},
		{
			name: "4x5 unused job",
			costs: [][]float64{
				{6, 0, 7, 5, 2},
				{2, 6, 2, 6, 7},
				{2, 7, 2, 1, 1},
				{9, 4, 7, 1, 0},
			},
			want: []int{1, 0, 3, 4},
			cost: 3,
		},
		{
			name: "5x4 unassigned worker",
			costs: [][]float64{
				{6, 0, 7, 5},
				{2, 6, 2, 6},
				{2, 7, 2, 1},
				{9, 4, 7, 1},
				{0, 0, 0, 0},
			},
			want: []int{1, U, 2, 3, 0},
			cost: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := hungarian.SolveSlices(tc.costs)
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Jobs)
			require.InDelta(t, tc.cost, res.Cost, costTol)
			require.InDelta(t, tc.cost, totalCost(tc.costs, res.Jobs), costTol)
			requireValidAssignment(t, len(tc.costs), len(tc.costs[0]), res)
		})
	}
}

// TestSolve_WithDenseInput runs the Matrix entry point on a *matrix.Dense.
func TestSolve_WithDenseInput(t *testing.T) {
	d, err := matrix.NewDenseFrom([][]float64{
		{4, 1.5, 4},
		{4, 4.5, 6},
		{3, 2.25, 3},
	})
	require.NoError(t, err)

	res, err := hungarian.Solve(d)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 2}, res.Jobs)
	require.InDelta(t, 8.5, res.Cost, costTol)

	// The solver works on a copy; the caller's matrix is untouched.
	v, err := d.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)
}

// TestNew_InputErrors covers every construction-time rejection.
func TestNew_InputErrors(t *testing.T) {
	_, err := hungarian.New(nil)
	assert.ErrorIs(t, err, hungarian.ErrNilMatrix, "nil interface")

	var typedNil *matrix.Dense
	_, err = hungarian.New(typedNil)
	assert.ErrorIs(t, err, hungarian.ErrNilMatrix, "typed nil *Dense")

	_, err = hungarian.NewFromSlices(nil)
	assert.ErrorIs(t, err, hungarian.ErrEmptyMatrix, "no rows")

	_, err = hungarian.NewFromSlices([][]float64{{}})
	assert.ErrorIs(t, err, hungarian.ErrEmptyMatrix, "no cols")

	_, err = hungarian.NewFromSlices([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, hungarian.ErrJaggedMatrix, "jagged rows")

	_, err = hungarian.NewFromSlices([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, hungarian.ErrNonFiniteCost, "NaN entry")

	_, err = hungarian.New(gridMatrix{a: [][]float64{{1, math.Inf(1)}}})
	assert.ErrorIs(t, err, hungarian.ErrNonFiniteCost, "+Inf through a custom Matrix")

	_, err = hungarian.New(gridMatrix{a: [][]float64{}})
	assert.ErrorIs(t, err, hungarian.ErrEmptyMatrix, "custom Matrix with no rows")
}

// TestNew_CostRange rejects magnitudes whose label arithmetic could overflow
// and solves inputs right below the bound.
func TestNew_CostRange(t *testing.T) {
	huge := [][]float64{{-1e308, 1e308}, {-1e308, 1e308}}
	_, err := hungarian.SolveSlices(huge)
	assert.ErrorIs(t, err, hungarian.ErrCostRange)
	_, err = hungarian.SolveSlices(huge, hungarian.WithoutReduction())
	assert.ErrorIs(t, err, hungarian.ErrCostRange)

	limit := hungarian.MaxCostMagnitude(2)
	_, err = hungarian.SolveSlices([][]float64{{0, 2 * limit}, {0, 0}})
	assert.ErrorIs(t, err, hungarian.ErrCostRange)

	res, err := hungarian.SolveSlices([][]float64{{-limit, limit}, {-limit, limit}}, hungarian.WithInvariantChecks())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Jobs)
	assert.Equal(t, 0.0, res.Cost)

	// Scaling by a power of two is exact, so the assignment is unchanged.
	scale := math.Ldexp(1, 1014)
	require.LessOrEqual(t, 6*scale, hungarian.MaxCostMagnitude(3))
	scaled := [][]float64{{4, 1.5, 4}, {4, 4.5, 6}, {3, 2.25, 3}}
	for _, row := range scaled {
		for j := range row {
			row[j] *= scale
		}
	}
	for _, opts := range [][]hungarian.Option{
		{hungarian.WithInvariantChecks()},
		{hungarian.WithInvariantChecks(), hungarian.WithoutReduction(), hungarian.WithoutGreedySeed()},
	} {
		res, err = hungarian.SolveSlices(scaled, opts...)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 2}, res.Jobs)
		assert.Equal(t, 8.5*scale, res.Cost)
	}

	assert.Equal(t, hungarian.MaxCostMagnitude(1), hungarian.MaxCostMagnitude(0))
}

// TestNew_OptionViolation ensures a bad tolerance is surfaced by New.
func TestNew_OptionViolation(t *testing.T) {
	_, err := hungarian.NewFromSlices([][]float64{{1}}, hungarian.WithFeasibilityTolerance(-1))
	assert.ErrorIs(t, err, hungarian.ErrOptionViolation)

	_, err = hungarian.NewFromSlices([][]float64{{1}}, hungarian.WithFeasibilityTolerance(math.NaN()))
	assert.ErrorIs(t, err, hungarian.ErrOptionViolation)
}

// TestExecute_SingleShot verifies that a solver cannot be re-run.
func TestExecute_SingleShot(t *testing.T) {
	s, err := hungarian.NewFromSlices([][]float64{{1, 2}, {2, 1}})
	require.NoError(t, err)

	res, err := s.Execute()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Jobs)
	require.Equal(t, hungarian.StageDone, s.Stage())

	_, err = s.Execute()
	require.ErrorIs(t, err, hungarian.ErrAlreadyExecuted)

	_, err = s.Step()
	require.ErrorIs(t, err, hungarian.ErrAlreadyExecuted)
}

// TestSolve_Degenerate covers inputs where every assignment costs the same.
func TestSolve_Degenerate(t *testing.T) {
	t.Run("all zero", func(t *testing.T) {
		res, err := hungarian.SolveSlices([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
		require.NoError(t, err)
		requireValidAssignment(t, 3, 3, res)
		require.Equal(t, []int{0, 1, 2}, res.Jobs, "greedy seed takes the diagonal")
		require.Equal(t, 0.0, res.Cost)
	})
	t.Run("all equal", func(t *testing.T) {
		res, err := hungarian.SolveSlices([][]float64{{7, 7}, {7, 7}, {7, 7}})
		require.NoError(t, err)
		requireValidAssignment(t, 3, 2, res)
		require.InDelta(t, 14.0, res.Cost, costTol)
	})
	t.Run("single cell", func(t *testing.T) {
		res, err := hungarian.SolveSlices([][]float64{{-3}})
		require.NoError(t, err)
		require.Equal(t, []int{0}, res.Jobs)
		require.Equal(t, -3.0, res.Cost)
	})
	t.Run("single row", func(t *testing.T) {
		res, err := hungarian.SolveSlices([][]float64{{5, 2, 9, 2.5}})
		require.NoError(t, err)
		require.Equal(t, []int{1}, res.Jobs)
		require.Equal(t, []int{0, 2, 3}, res.UnusedJobs(4))
	})
	t.Run("single column", func(t *testing.T) {
		res, err := hungarian.SolveSlices([][]float64{{5}, {2}, {9}})
		require.NoError(t, err)
		require.Equal(t, []int{U, 0, U}, res.Jobs)
		require.Equal(t, []int{0, 2}, res.UnassignedWorkers())
		require.Equal(t, 2.0, res.Cost)
	})
}

// TestSolve_NegativeCosts checks that sign does not matter.
func TestSolve_NegativeCosts(t *testing.T) {
	costs := [][]float64{
		{-1, -5, -3},
		{-2, -4, -6},
		{-3, -6, -9},
	}
	res, err := hungarian.SolveSlices(costs)
	require.NoError(t, err)
	requireValidAssignment(t, 3, 3, res)
	require.InDelta(t, bruteForce(costs, false), res.Cost, costTol)
}

// TestSolve_Maximize flips the objective while reporting caller units.
func TestSolve_Maximize(t *testing.T) {
	costs := [][]float64{{1, 5}, {2, 3}}

	minRes, err := hungarian.SolveSlices(costs)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, minRes.Jobs)
	require.Equal(t, 4.0, minRes.Cost)

	maxRes, err := hungarian.SolveSlices(costs, hungarian.WithMaximize())
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, maxRes.Jobs)
	require.Equal(t, 7.0, maxRes.Cost)
}

// TestSolve_HeuristicsDoNotChangeOptimum toggles reduction and greedy seed.
func TestSolve_HeuristicsDoNotChangeOptimum(t *testing.T) {
	costs := [][]float64{
		{6, 0, 7, 5, 2},
		{2, 6, 2, 6, 7},
		{2, 7, 2, 1, 1},
		{9, 4, 7, 1, 0},
	}
	variants := map[string][]hungarian.Option{
		"default":      nil,
		"no reduction": {hungarian.WithoutReduction()},
		"no greedy":    {hungarian.WithoutGreedySeed()},
		"bare":         {hungarian.WithoutReduction(), hungarian.WithoutGreedySeed(), hungarian.WithInvariantChecks()},
	}
	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			res, err := hungarian.SolveSlices(costs, opts...)
			require.NoError(t, err)
			requireValidAssignment(t, 4, 5, res)
			require.InDelta(t, 3.0, res.Cost, costTol)
		})
	}
}

// TestResult_Accessors covers the boundary helpers on Result.
func TestResult_Accessors(t *testing.T) {
	res := hungarian.Result{Jobs: []int{2, U, 0}}

	j, ok := res.Job(0)
	assert.True(t, ok)
	assert.Equal(t, 2, j)

	j, ok = res.Job(1)
	assert.False(t, ok)
	assert.Equal(t, U, j)

	_, ok = res.Job(3)
	assert.False(t, ok, "out of range worker")
	_, ok = res.Job(-1)
	assert.False(t, ok, "negative worker")

	assert.Equal(t, [][2]int{{0, 2}, {2, 0}}, res.Pairs())
	assert.Equal(t, []int{1}, res.UnassignedWorkers())
	assert.Equal(t, []int{1, 3}, res.UnusedJobs(4))
	assert.Nil(t, res.UnusedJobs(0))
}

// gridMatrix is a minimal matrix.Matrix over [][]float64 with bound checks.
type gridMatrix struct{ a [][]float64 }

var _ matrix.Matrix = gridMatrix{}

func (m gridMatrix) Rows() int { return len(m.a) }

func (m gridMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}
	return len(m.a[0])
}

func (m gridMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}
	return m.a[i][j], nil
}

func (m gridMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v
	return nil
}

func (m gridMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}
	return gridMatrix{a: cp}
}
