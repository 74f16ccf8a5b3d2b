package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleAddScaledProduct evaluates D = A + (3·B) × Cᵀ.
func ExampleAddScaledProduct() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{6, 4, 8, 3})
	b, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	c, _ := matrix.NewDenseFrom(2, 3, []float64{2, 4, 6, 1, 3, 5})

	d, err := matrix.AddScaledProduct(a, b, c, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(d)
	// Output:
	// [90 70]
	// [200 150]
}

// ExampleDense_Set shows that out-of-range writes are rejected without side effects.
func ExampleDense_Set() {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(1, 1, 4.2)

	err := m.Set(2, 2, 1.0)
	fmt.Println(errors.Is(err, matrix.ErrOutOfRange))
	fmt.Print(m)
	// Output:
	// true
	// [0 0]
	// [0 4.2]
}

// ExampleMul shows the dimension check.
func ExampleMul() {
	a, _ := matrix.NewDense(2, 3)
	_, err := matrix.Mul(a, a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true
}
