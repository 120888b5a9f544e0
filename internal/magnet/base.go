package magnet

import (
	"errors"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fluxline/fluxline/internal/bfield"
)

var (
	// ErrDimension indicates a non-positive or inconsistent geometry input.
	ErrDimension = errors.New("magnet: invalid dimension")

	// ErrExcitation indicates a zero magnetization or moment.
	ErrExcitation = errors.New("magnet: excitation must be nonzero")

	// ErrVertices indicates a polyline with fewer than two vertices.
	ErrVertices = errors.New("magnet: polyline needs at least two vertices")

	// ErrPath indicates an empty or ragged path.
	ErrPath = errors.New("magnet: path needs equal, nonzero position and orientation counts")
)

// object carries the position/orientation path shared by all sources.
type object struct {
	path bfield.Path
}

func newObject() object {
	return object{path: bfield.StaticPath(r3.Vec{}, bfield.IdentityRotation())}
}

func (o *object) Path() bfield.Path { return o.path }

// SetPath replaces the object's path with a copy of p.
func (o *object) SetPath(p bfield.Path) error {
	if p.Len() == 0 || len(p.Pos) != len(p.Ori) {
		return ErrPath
	}
	o.path = bfield.Path{
		Pos: append([]r3.Vec(nil), p.Pos...),
		Ori: append([]r3.Rotation(nil), p.Ori...),
	}
	return nil
}

// SetPosition collapses the path to one static state at pos, keeping the
// current final orientation.
func (o *object) SetPosition(pos r3.Vec) {
	ori := o.path.Ori[len(o.path.Ori)-1]
	o.path = bfield.StaticPath(pos, ori)
}

// SetOrientation collapses the path to one static state with the given
// orientation, keeping the current final position.
func (o *object) SetOrientation(ori r3.Rotation) {
	pos := o.path.Pos[len(o.path.Pos)-1]
	o.path = bfield.StaticPath(pos, ori)
}

// Translate shifts every path step by d.
func (o *object) Translate(d r3.Vec) {
	for i := range o.path.Pos {
		o.path.Pos[i] = r3.Add(o.path.Pos[i], d)
	}
}

// Rotate composes r onto the orientation of every path step; positions are
// unchanged (rotation about the object's own frame).
func (o *object) Rotate(r r3.Rotation) {
	for i := range o.path.Ori {
		o.path.Ori[i] = r3.Rotation(quat.Mul(quat.Number(r), quat.Number(o.path.Ori[i])))
	}
}

func checkExcitation(v r3.Vec) error {
	if v == (r3.Vec{}) {
		return ErrExcitation
	}
	return nil
}
