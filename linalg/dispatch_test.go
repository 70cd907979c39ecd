package linalg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// recordingExecutor specializes both updates for float64 and records calls
// without touching A, so any change to A proves the reference kernel ran.
type recordingExecutor struct {
	symmetric int
	hermitian int
}

func (*recordingExecutor) Name() string { return "recording" }

func (r *recordingExecutor) SymmetricRank2Update(x, y Vector[float64], a Matrix[float64], tri Triangle) {
	r.symmetric++
}

func (r *recordingExecutor) HermitianRank2Update(x, y Vector[float64], a Matrix[float64], tri Triangle) {
	r.hermitian++
}

// plainExecutor has no specialization at all.
type plainExecutor struct{}

func (plainExecutor) Name() string { return "plain" }

// countingScheduler runs ranges inline and records what it was asked for.
type countingScheduler struct {
	calls  int
	ranges [][2]int
}

func (*countingScheduler) Name() string { return "counting" }

func (c *countingScheduler) ScheduleRange(n, grain int, fn func(lo, hi int)) {
	c.calls++
	for lo := 0; lo < n; lo += grain {
		hi := min(lo+grain, n)
		c.ranges = append(c.ranges, [2]int{lo, hi})
		fn(lo, hi)
	}
}

// embeddedSequential embeds Sequential but adds a specialization; it must
// still not be treated as one.
type embeddedSequential struct {
	Sequential
	calls *int
}

func (e embeddedSequential) SymmetricRank2Update(x, y Vector[float64], a Matrix[float64], tri Triangle) {
	*e.calls++
}

// mappedExecutor normalizes to its target.
type mappedExecutor struct {
	target Executor
}

func (mappedExecutor) Name() string { return "mapped" }
func (m mappedExecutor) MapExecutor() Executor { return m.target }

// failingExecutor panics from its specialization.
type failingExecutor struct{}

var errDevice = errors.New("device lost")

func (failingExecutor) Name() string { return "failing" }

func (failingExecutor) HermitianRank2Update(x, y Vector[complex128], a Matrix[complex128], tri Triangle) {
	panic(errDevice)
}

func scenario() (Vector[float64], Vector[float64], Matrix[float64]) {
	return VectorOf([]float64{1, 2}), VectorOf([]float64{3, 4}), RowMajorOf(make([]float64, 4), 2, 2)
}

func TestDispatchUsesSpecialization(t *testing.T) {
	rec := &recordingExecutor{}
	x, y, a := scenario()

	SymmetricRank2UpdateWith(rec, x, y, a, Lower)
	HermitianRank2UpdateWith(rec, x, y, a, Upper)

	assert.Equal(t, 1, rec.symmetric)
	assert.Equal(t, 1, rec.hermitian)
	assert.Equal(t, []float64{0, 0, 0, 0}, a.Data(), "reference kernel must not run")
}

func TestDispatchSpecializationIsPerElementType(t *testing.T) {
	rec := &recordingExecutor{}
	x := VectorOf([]float32{1, 2})
	y := VectorOf([]float32{3, 4})
	a := RowMajorOf(make([]float32, 4), 2, 2)

	SymmetricRank2UpdateWith(rec, x, y, a, Lower)

	assert.Zero(t, rec.symmetric)
	assert.Equal(t, []float32{6, 0, 10, 16}, a.Data())
}

func TestDispatchFallsBackToReferenceOnce(t *testing.T) {
	x, y, a := scenario()

	SymmetricRank2UpdateWith(plainExecutor{}, x, y, a, Lower)

	assert.Equal(t, []float64{6, 0, 10, 16}, a.Data())
}

func TestDispatchSequentialIsNeverCustom(t *testing.T) {
	calls := 0
	x, y, a := scenario()

	SymmetricRank2UpdateWith(embeddedSequential{calls: &calls}, x, y, a, Lower)

	assert.Zero(t, calls)
	assert.Equal(t, []float64{6, 0, 10, 16}, a.Data())
}

func TestDispatchRangeScheduler(t *testing.T) {
	const n = 20
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range n {
		xs[i], ys[i] = float64(i), float64(n-i)
	}

	for _, layout := range []Layout{RowMajor, ColMajor} {
		t.Run(layout.String(), func(t *testing.T) {
			want := newMatrix(make([]float64, n*n), n, layout)
			SymmetricRank2UpdateWith(Sequential{}, VectorOf(xs), VectorOf(ys), want, Lower)

			sched := &countingScheduler{}
			got := newMatrix(make([]float64, n*n), n, layout)
			SymmetricRank2UpdateWith(sched, VectorOf(xs), VectorOf(ys), got, Lower)

			assert.Equal(t, 1, sched.calls)
			assert.Equal(t, want.Data(), got.Data())
			require.NotEmpty(t, sched.ranges)
			assert.Equal(t, 0, sched.ranges[0][0])
			assert.Equal(t, n, sched.ranges[len(sched.ranges)-1][1])
		})
	}
}

func TestDispatchRangeSchedulerHermitian(t *testing.T) {
	xs := []complex128{1i, 2, 3 - 1i, 4}
	ys := []complex128{1, 1i, 2, -2i}
	before := []complex128{
		1i, 0, 0, 0,
		1, 2, 0, 0,
		1, 2, 3i, 0,
		1, 2, 3, 4,
	}
	want := RowMajorOf(append([]complex128(nil), before...), 4, 4)
	HermitianRank2UpdateWith(Sequential{}, VectorOf(xs), VectorOf(ys), want, Lower)

	sched := &countingScheduler{}
	got := RowMajorOf(append([]complex128(nil), before...), 4, 4)
	HermitianRank2UpdateWith(sched, VectorOf(xs), VectorOf(ys), got, Lower)

	assert.Equal(t, 1, sched.calls)
	assert.Equal(t, want.Data(), got.Data())
}

func TestDispatchMapper(t *testing.T) {
	rec := &recordingExecutor{}
	x, y, a := scenario()

	SymmetricRank2UpdateWith(mappedExecutor{target: rec}, x, y, a, Lower)
	assert.Equal(t, 1, rec.symmetric)

	SymmetricRank2UpdateWith(mappedExecutor{target: Sequential{}}, x, y, a, Lower)
	assert.Equal(t, 1, rec.symmetric)
	assert.Equal(t, []float64{6, 0, 10, 16}, a.Data())
}

// acceleratedParallel embeds *Parallel, inheriting its MapExecutor, and adds
// its own float64 specializations.
type acceleratedParallel struct {
	*Parallel
	symmetric int
	hermitian int
}

func (p *acceleratedParallel) SymmetricRank2Update(x, y Vector[float64], a Matrix[float64], tri Triangle) {
	p.symmetric++
}

func (p *acceleratedParallel) HermitianRank2Update(x, y Vector[float64], a Matrix[float64], tri Triangle) {
	p.hermitian++
}

func TestDispatchSpecializationWinsOverEmbeddedMapper(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	acc := &acceleratedParallel{Parallel: NewParallel(2)}
	x, y, a := scenario()

	SymmetricRank2UpdateWith(acc, x, y, a, Lower)
	HermitianRank2UpdateWith(acc, x, y, a, Lower)
	assert.Equal(t, 1, acc.symmetric)
	assert.Equal(t, 1, acc.hermitian)
	assert.Equal(t, []float64{0, 0, 0, 0}, a.Data(), "reference kernel must not run")

	// A closed pool maps to Sequential, which must not hide the specialization.
	acc.Close()
	SymmetricRank2UpdateWith(acc, x, y, a, Lower)
	assert.Equal(t, 2, acc.symmetric)
	assert.Equal(t, []float64{0, 0, 0, 0}, a.Data())

	// float32 has no specialization and falls through to the mapped executor.
	x32 := VectorOf([]float32{1, 2})
	y32 := VectorOf([]float32{3, 4})
	a32 := RowMajorOf(make([]float32, 4), 2, 2)
	SymmetricRank2UpdateWith(acc, x32, y32, a32, Lower)
	assert.Equal(t, []float32{6, 0, 10, 16}, a32.Data())
}

func TestDispatchPropagatesSpecializationPanic(t *testing.T) {
	x := VectorOf([]complex128{1})
	a := RowMajorOf([]complex128{0}, 1, 1)

	assert.PanicsWithValue(t, errDevice, func() {
		HermitianRank2UpdateWith(failingExecutor{}, x, x, a, Lower)
	})
}

func TestDefaultOverloadMatchesExplicitDefault(t *testing.T) {
	rec := &recordingExecutor{}
	prev := SetDefault(rec)
	t.Cleanup(func() { SetDefault(prev) })

	x, y, a := scenario()
	SymmetricRank2Update(x, y, a, Lower)
	SymmetricRank2UpdateWith(Default(), x, y, a, Lower)
	SymmetricRank2UpdateWith(nil, x, y, a, Lower)
	HermitianRank2Update(x, y, a, Lower)

	assert.Equal(t, 3, rec.symmetric)
	assert.Equal(t, 1, rec.hermitian)
	assert.Equal(t, []float64{0, 0, 0, 0}, a.Data())

	SetDefault(Sequential{})
	x, y, a = scenario()
	_, _, b := scenario()
	SymmetricRank2Update(x, y, a, Lower)
	SymmetricRank2UpdateWith(Default(), x, y, b, Lower)
	assert.Equal(t, b.Data(), a.Data())
}
