// Package cube is the public facade: it wires a geometry.Cube together with
// a controller.Controller so that callers get a cube whose Rotate and
// Snapshot methods are already safe to call from many goroutines at once,
// without needing to know anything about group admission or plane locks.
package cube

import (
	"context"
	"fmt"
	"strings"

	"github.com/ehrlich-b/cubesync/internal/controller"
	"github.com/ehrlich-b/cubesync/internal/geometry"
)

// Color is one of the six sticker colors, in solved-face order.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

func (c Color) String() string {
	return []string{"W", "Y", "R", "O", "B", "G"}[c]
}

// ColoredString returns a muted ANSI-colored single-letter representation.
func (c Color) ColoredString() string {
	colors := []string{
		"\033[37mW\033[0m",
		"\033[33mY\033[0m",
		"\033[31mR\033[0m",
		"\033[35mO\033[0m",
		"\033[34mB\033[0m",
		"\033[32mG\033[0m",
	}
	return colors[c]
}

// UnicodeString returns a colored Unicode square representation.
func (c Color) UnicodeString() string {
	squares := []string{"⬜", "\U0001f7e8", "\U0001f7e5", "\U0001f7e7", "\U0001f7e6", "\U0001f7e9"}
	return squares[c]
}

// Face names one of the cube's six faces. Face numbering matches
// geometry's canonical face IDs, so Face(i) is always a valid argument to
// Cube.Rotate.
type Face int

const (
	Up Face = iota
	Right
	Front
	Left
	Back
	Down
)

func (f Face) String() string {
	return []string{"U", "R", "F", "L", "B", "D"}[f]
}

// Hooks lets a caller observe rotations and snapshots as they happen,
// while still serialized by the controller: a BeforeRotate/AfterRotate
// pair for a given plane never overlaps any other rotation's hooks on a
// conflicting plane, and snapshot hooks never overlap any rotation's
// hooks at all. Any field left nil is simply not called.
//
// A hook receives the caller's ctx so it can honor cancellation, and
// returns an error so it has a channel to report failure through other
// than panicking. Either way - a returned error or a panic - the
// controller's exit protocol for that plane or for the snapshot still
// runs before Rotate/Snapshot returns to the caller, since it is entered
// via defer immediately after admission; a hook error is then surfaced to
// the caller verbatim as Rotate/Snapshot's own return value.
type Hooks struct {
	BeforeRotate   func(ctx context.Context, face Face, layer int) error
	AfterRotate    func(ctx context.Context, face Face, layer int) error
	BeforeSnapshot func(ctx context.Context) error
	AfterSnapshot  func(ctx context.Context, snapshot string) error
}

// Cube is a concurrency-safe NxNxN cube: the combination of an
// unsynchronized geometry.Cube and the controller.Controller that
// serializes access to it.
type Cube struct {
	geom  *geometry.Cube
	ctrl  *controller.Controller
	hooks Hooks
}

// Construct builds a solved cube of the given size with the given hooks.
// A zero Hooks value is valid and installs no callbacks.
func Construct(size int, hooks Hooks) *Cube {
	return &Cube{
		geom:  geometry.New(size),
		ctrl:  controller.New(size),
		hooks: hooks,
	}
}

// Size reports the cube's fixed dimension.
func (c *Cube) Size() int { return c.geom.Size }

// Rotate turns the layer of depth `layer` as viewed from `face` by one
// clockwise quarter turn. It blocks until admitted by the controller, runs
// the hooks and the geometry mutation, and always releases the controller
// before returning - including when ctx is cancelled while waiting (no
// mutation happens and ctx.Err() is returned), and including when a hook
// panics or returns an error. A hook error is returned verbatim; a hook
// panic still unwinds through Rotate, but only after the deferred exit has
// run.
func (c *Cube) Rotate(ctx context.Context, face Face, layer int) error {
	if face < Up || face > Down {
		return fmt.Errorf("cube: face %d out of range", face)
	}
	if layer < 0 || layer >= c.geom.Size {
		return fmt.Errorf("cube: layer %d out of range for size %d", layer, c.geom.Size)
	}

	f := int(face)
	d := geometry.DirectionOf(f)
	plane := geometry.Plane(f, layer, c.geom.Size)

	if err := c.ctrl.EnterRotate(ctx, d, plane); err != nil {
		return err
	}
	defer c.ctrl.ExitRotate(d, plane)

	if c.hooks.BeforeRotate != nil {
		if err := c.hooks.BeforeRotate(ctx, face, layer); err != nil {
			return err
		}
	}
	c.geom.RotateLayer(f, layer)
	if c.hooks.AfterRotate != nil {
		if err := c.hooks.AfterRotate(ctx, face, layer); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns the cube's full sticker state as a string of digit
// characters '0'..'5', one per sticker, in face-major row-major order. It
// blocks until admitted by the controller and excludes every in-flight
// rotation, so the returned string is always internally consistent. As
// with Rotate, the controller's exit always runs - via defer, immediately
// after admission - even if a hook panics or returns an error.
func (c *Cube) Snapshot(ctx context.Context) (string, error) {
	if err := c.ctrl.EnterSnapshot(ctx); err != nil {
		return "", err
	}
	defer c.ctrl.ExitSnapshot()

	if c.hooks.BeforeSnapshot != nil {
		if err := c.hooks.BeforeSnapshot(ctx); err != nil {
			return "", err
		}
	}
	snap := c.geom.Snapshot()
	if c.hooks.AfterSnapshot != nil {
		if err := c.hooks.AfterSnapshot(ctx, snap); err != nil {
			return "", err
		}
	}
	return snap, nil
}

// IsSolved reports whether every sticker on a face matches that face's
// first sticker, for the given already-fetched snapshot.
func IsSolved(snapshot string, size int) bool {
	if size == 0 {
		return true
	}
	perFace := size * size
	for face := 0; face < 6; face++ {
		start := face * perFace
		first := snapshot[start]
		for i := 0; i < perFace; i++ {
			if snapshot[start+i] != first {
				return false
			}
		}
	}
	return true
}

// String renders a snapshot as six labeled faces of single-letter colors.
func String(snapshot string, size int) string {
	return render(snapshot, size, Color.String)
}

// ColoredString renders a snapshot as six labeled faces of ANSI-colored
// letters.
func ColoredString(snapshot string, size int) string {
	return render(snapshot, size, Color.ColoredString)
}

func render(snapshot string, size int, cell func(Color) string) string {
	var sb strings.Builder
	faceNames := []string{"Up", "Right", "Front", "Left", "Back", "Down"}
	perFace := size * size
	for face := 0; face < 6; face++ {
		sb.WriteString(fmt.Sprintf("%s face:\n", faceNames[face]))
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				idx := face*perFace + row*size + col
				color := Color(snapshot[idx] - '0')
				sb.WriteString(cell(color))
				sb.WriteString(" ")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
