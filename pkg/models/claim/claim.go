package claim

import "fmt"

type Claim struct {
	Id     int
	Left   int
	Top    int
	Width  int
	Height int
}

// Right and Bottom are exclusive.
func (c Claim) Right() int {
	return c.Left + c.Width
}

func (c Claim) Bottom() int {
	return c.Top + c.Height
}

func (c Claim) Area() int {
	return c.Width * c.Height
}

func (c Claim) Contains(x, y int) bool {
	return x >= c.Left && x < c.Right() && y >= c.Top && y < c.Bottom()
}

func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.Id, c.Left, c.Top, c.Width, c.Height)
}
