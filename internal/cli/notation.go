package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ehrlich-b/cubesync/internal/cube"
)

// faceLetters maps the single-letter notation used on the command line to
// the facade's Face values.
var faceLetters = map[byte]cube.Face{
	'U': cube.Up,
	'R': cube.Right,
	'F': cube.Front,
	'L': cube.Left,
	'B': cube.Back,
	'D': cube.Down,
}

// turn is one parsed move: rotate the layer `layer` deep from `face`,
// repeated `quarterTurns` times clockwise.
type turn struct {
	face         cube.Face
	layer        int
	quarterTurns int
}

// parseMoves parses a whitespace-separated sequence of moves like
// "R U R' U'" or "2R U2 3F'" against a cube of the given size. An optional
// leading digit names the 1-indexed layer depth from the face (default 1,
// meaning the outermost layer); a trailing ' reverses the turn and a
// trailing 2 doubles it.
func parseMoves(s string, size int) ([]turn, error) {
	fields := strings.Fields(s)
	turns := make([]turn, 0, len(fields))
	for _, tok := range fields {
		t, err := parseMove(tok, size)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func parseMove(tok string, size int) (turn, error) {
	orig := tok
	if tok == "" {
		return turn{}, fmt.Errorf("empty move")
	}

	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	depth := 1
	if i > 0 {
		n, err := strconv.Atoi(tok[:i])
		if err != nil {
			return turn{}, fmt.Errorf("move %q: bad layer depth", orig)
		}
		depth = n
	}
	tok = tok[i:]

	if tok == "" {
		return turn{}, fmt.Errorf("move %q: missing face letter", orig)
	}
	face, ok := faceLetters[tok[0]]
	if !ok {
		return turn{}, fmt.Errorf("move %q: unknown face %q", orig, string(tok[0]))
	}
	tok = tok[1:]

	quarterTurns := 1
	if tok == "'" {
		quarterTurns = 3
	} else if tok == "2" {
		quarterTurns = 2
	} else if tok != "" {
		return turn{}, fmt.Errorf("move %q: unrecognized modifier %q", orig, tok)
	}

	if depth < 1 || depth > size {
		return turn{}, fmt.Errorf("move %q: layer depth %d out of range for size %d", orig, depth, size)
	}

	return turn{face: face, layer: depth - 1, quarterTurns: quarterTurns}, nil
}

// applyTurns runs each parsed turn against c in order, one Rotate call per
// quarter turn.
func applyTurns(ctx context.Context, c *cube.Cube, turns []turn) error {
	for _, t := range turns {
		for i := 0; i < t.quarterTurns; i++ {
			if err := c.Rotate(ctx, t.face, t.layer); err != nil {
				return err
			}
		}
	}
	return nil
}
