package pen_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/labkit/pen"
)

// ExamplePen_DrawArc draws a unit circle and then tries a negative radius.
func ExamplePen_DrawArc() {
	p, _ := pen.New(5, "red")

	err := p.DrawArc(pen.Point{}, 1, -math.Pi, math.Pi)
	fmt.Println("unit circle:", err)

	err = p.DrawArc(pen.Point{}, -1, 0, math.Pi)
	fmt.Println("bad radius:", errors.Is(err, pen.ErrRadius))
	fmt.Println("strokes:", p.Strokes())
	// Output:
	// unit circle: <nil>
	// bad radius: true
	// strokes: 1
}
