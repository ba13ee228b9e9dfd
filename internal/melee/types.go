package melee

import "fmt"

// Port is a controller slot index, 0 through 3.
type Port uint8

func (p Port) String() string {
	return fmt.Sprintf("P%d", p+1)
}

// Position is a world-space coordinate pair.
type Position struct {
	X, Y float32
}

func (p Position) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Velocity is a per-frame displacement pair.
type Velocity struct {
	X, Y float32
}

// Stick is an analog stick coordinate pair. Engine-processed values are
// scaled to [-1, 1] on both axes.
type Stick struct {
	X, Y float32
}

func (s Stick) String() string {
	return fmt.Sprintf("(%g, %g)", s.X, s.Y)
}
