package point

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDict_TwoD(t *testing.T) {
	p := New(1.4, 2.6, 3.5)
	got := Dict(p, true)
	assert.Equal(t, map[string]int{"x": 1, "y": 3}, got)
}

func TestDict_ThreeD(t *testing.T) {
	p := New(1.4, 2.6, 3.5)
	got := Dict(p, false)
	assert.Equal(t, map[string]int{"x": 1, "y": 3, "z": 4}, got)
}

func TestDict_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{name: "half rounds up", x: 2.5, want: 3},
		{name: "half rounds up on odd", x: 3.5, want: 4},
		{name: "negative half rounds away", x: -2.5, want: -3},
		{name: "below half rounds down", x: 2.4, want: 2},
		{name: "above half rounds up", x: 2.6, want: 3},
		{name: "exact integer", x: 7, want: 7},
		{name: "zero", x: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dict(New(tt.x, 0, 0), true)
			assert.Equal(t, tt.want, got["x"], "rounding %v", tt.x)
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    string
	}{
		{name: "integers", x: 1, y: 2, z: 3, want: "(1.00, 2.00, 3.00)"},
		{name: "two decimals kept", x: 1.4, y: 2.6, z: 3.5, want: "(1.40, 2.60, 3.50)"},
		{name: "third decimal rounds", x: 1.005, y: 0, z: 0, want: "(1.00, 0.00, 0.00)"},
		{name: "negative", x: -1.5, y: 0, z: 2.25, want: "(-1.50, 0.00, 2.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Display(New(tt.x, tt.y, tt.z))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPoint_String(t *testing.T) {
	p := New(1, 2, 3)
	assert.Equal(t, "(1.00, 2.00, 3.00)", p.String())
	// fmt uses the Stringer for %v and %s.
	assert.Equal(t, "(1.00, 2.00, 3.00)", fmt.Sprintf("%v", p))
}

func TestPoint_Accessors(t *testing.T) {
	p := New(1.4, 2.6, 3.5)
	assert.Equal(t, 1.4, p.X())
	assert.Equal(t, 2.6, p.Y())
	assert.Equal(t, 3.5, p.Z())
}

func TestPoint_GoString(t *testing.T) {
	p := New(1, 2, 3)
	repr := p.GoString()

	assert.Contains(t, repr, "point.Point", "debug form should name the type")
	assert.Contains(t, repr, "(1.00, 2.00, 3.00)", "debug form should keep two-decimal coordinates")
	assert.Contains(t, repr, "at 0x", "debug form should carry the hex instance token")
}

func TestPoint_IdentityDistinct(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)

	assert.NotEqual(t, a.ID(), b.ID(),
		"two instances with equal coordinates should have distinct identifiers")
	assert.NotEqual(t, a.GoString(), b.GoString())
	// Display output is identity-free and therefore identical.
	assert.Equal(t, a.String(), b.String())
}

func TestPoint_IDFormat(t *testing.T) {
	id := New(0, 0, 0).ID()
	assert.True(t, strings.HasPrefix(id, "0x"), "ID should be a hex token, got %q", id)
	assert.Len(t, id, 2+32, "ID should be 16 identifier bytes in hex")
	for _, ch := range id[2:] {
		assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f'),
			"ID should contain only lowercase hex digits, got %q", id)
	}
}

// coordPair exercises the Coords interface with a foreign point-like type.
type coordPair struct{ x, y float64 }

func (c coordPair) X() float64 { return c.x }
func (c coordPair) Y() float64 { return c.y }
func (c coordPair) Z() float64 { return 0 }

func TestCoords_ForeignImplementation(t *testing.T) {
	c := coordPair{x: 0.5, y: -0.5}

	assert.Equal(t, "(0.50, -0.50, 0.00)", Display(c))
	assert.Equal(t, map[string]int{"x": 1, "y": -1}, Dict(c, true))
}
