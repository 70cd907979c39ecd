package linalg_test

import (
	"fmt"

	"github.com/ajroetker/go-linalg/linalg"
)

func ExampleSymmetricRank2UpdateWith() {
	x := linalg.VectorOf([]float64{1, 2})
	y := linalg.VectorOf([]float64{3, 4})
	a := linalg.RowMajorOf(make([]float64, 4), 2, 2)

	linalg.SymmetricRank2UpdateWith(linalg.Sequential{}, x, y, a, linalg.Lower)

	fmt.Println(a.At(0, 0), a.At(0, 1))
	fmt.Println(a.At(1, 0), a.At(1, 1))
	// Output:
	// 6 0
	// 10 16
}

func ExampleHermitianRank2UpdateWith() {
	x := linalg.VectorOf([]complex128{1i, 2})
	y := linalg.VectorOf([]complex128{1, 1i})
	a := linalg.RowMajorOf([]complex128{5i, 0, 0, 0}, 2, 2)

	linalg.HermitianRank2UpdateWith(linalg.Sequential{}, x, y, a, linalg.Upper)

	fmt.Println(a.At(0, 0), a.At(0, 1), a.At(1, 1))
	// Output:
	// (0+0i) (3+0i) (0+0i)
}

// deviceExecutor stands in for an accelerator binding that only knows float64.
type deviceExecutor struct{}

func (deviceExecutor) Name() string { return "device" }

func (deviceExecutor) SymmetricRank2Update(x, y linalg.Vector[float64], a linalg.Matrix[float64], tri linalg.Triangle) {
	fmt.Println("device kernel, n =", a.Rows())
	// A real binding would launch its kernel here; this one reuses the
	// reference loop.
	linalg.SymmetricRank2UpdateWith(linalg.Sequential{}, x, y, a, tri)
}

func ExampleSymmetricRank2Updater() {
	a := linalg.RowMajorOf(make([]float64, 4), 2, 2)
	linalg.SymmetricRank2UpdateWith(deviceExecutor{},
		linalg.VectorOf([]float64{1, 2}), linalg.VectorOf([]float64{3, 4}), a, linalg.Lower)

	// float32 has no device specialization and runs the reference kernel.
	b := linalg.RowMajorOf(make([]float32, 4), 2, 2)
	linalg.SymmetricRank2UpdateWith(deviceExecutor{},
		linalg.VectorOf([]float32{1, 2}), linalg.VectorOf([]float32{3, 4}), b, linalg.Lower)

	fmt.Println(a.Data(), b.Data())
	// Output:
	// device kernel, n = 2
	// [6 0 10 16] [6 0 10 16]
}
