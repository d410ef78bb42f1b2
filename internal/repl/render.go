package repl

import (
	"strconv"
	"strings"

	"github.com/huynhanx03/go-linear/internal/simulator"
	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
)

const emptyMarker = "(empty)"

// Render draws the collection as a single line, labelled by mode:
// "bottom | 1 | 2 | top" for a stack, "front | 1 | 2 | rear" for a queue.
func Render(res *simulator.Result) string {
	if res == nil || res.Empty || len(res.Elements) == 0 {
		return emptyMarker
	}

	head, tail := "bottom", "top"
	if res.Mode == linear.ModeQueue {
		head, tail = "front", "rear"
	}

	parts := make([]string, 0, len(res.Elements)+2)
	parts = append(parts, head)
	for _, v := range res.Elements {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	parts = append(parts, tail)
	return strings.Join(parts, " | ")
}
