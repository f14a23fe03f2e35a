package fabric

import (
	"fmt"

	"github.com/HuXin0817/fabric-claims/pkg/models/claim"
)

// Inch is one unit cell of the fabric.
type Inch struct {
	X int
	Y int
}

func NewInch(x, y int) Inch {
	return Inch{X: x, Y: y}
}

func (i Inch) String() string {
	return fmt.Sprintf("(%d, %d)", i.X, i.Y)
}

// EachInch calls yield for every cell covered by c, column by column, until yield
// returns false.
func EachInch(c claim.Claim, yield func(Inch) bool) {
	for x := c.Left; x < c.Right(); x++ {
		for y := c.Top; y < c.Bottom(); y++ {
			if !yield(NewInch(x, y)) {
				return
			}
		}
	}
}
