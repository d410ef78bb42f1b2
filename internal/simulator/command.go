package simulator

import (
	"errors"
	"strings"

	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
)

// ErrUnknownCommand is returned for names outside the command vocabulary.
var ErrUnknownCommand = errors.New("simulator: unknown command")

// Op is a core operation a command maps to.
type Op int

const (
	OpInsert Op = iota + 1
	OpRemove
	OpPeek
	OpSize
	OpCapacity
	OpRemaining
	OpDisplay
	OpIsEmpty
	OpIsFull
	OpSetMode
)

var opNames = map[Op]string{
	OpInsert:    "insert",
	OpRemove:    "remove",
	OpPeek:      "peek",
	OpSize:      "size",
	OpCapacity:  "capacity",
	OpRemaining: "remaining",
	OpDisplay:   "display",
	OpIsEmpty:   "is_empty",
	OpIsFull:    "is_full",
	OpSetMode:   "mode",
}

func (o Op) String() string {
	return opNames[o]
}

// Command is a parsed command name. Mode is empty unless the name selects one.
type Command struct {
	Name string
	Op   Op
	Mode linear.Mode
}

// NeedsValue reports whether the command consumes a value argument.
func (c Command) NeedsValue() bool {
	return c.Op == OpInsert || c.Op == OpSetMode
}

type entry struct {
	op   Op
	mode linear.Mode
}

var vocabulary = map[string]entry{
	"insert":  {op: OpInsert},
	"push":    {op: OpInsert},
	"enqueue": {op: OpInsert},
	"remove":  {op: OpRemove},
	"pop":     {op: OpRemove},
	"dequeue": {op: OpRemove},
	"peek":    {op: OpPeek},
	"front":   {op: OpPeek},
	"top":     {op: OpPeek},

	"size":      {op: OpSize},
	"capacity":  {op: OpCapacity},
	"remaining": {op: OpRemaining},
	"display":   {op: OpDisplay},
	"show":      {op: OpDisplay},
	"is_empty":  {op: OpIsEmpty},
	"is_full":   {op: OpIsFull},
	"mode":      {op: OpSetMode},

	"stack_push":     {op: OpInsert, mode: linear.ModeStack},
	"stack_pop":      {op: OpRemove, mode: linear.ModeStack},
	"stack_peek":     {op: OpPeek, mode: linear.ModeStack},
	"stack_size":     {op: OpSize, mode: linear.ModeStack},
	"stack_capacity": {op: OpCapacity, mode: linear.ModeStack},
	"stack_display":  {op: OpDisplay, mode: linear.ModeStack},

	"queue_enqueue":  {op: OpInsert, mode: linear.ModeQueue},
	"queue_dequeue":  {op: OpRemove, mode: linear.ModeQueue},
	"queue_peek":     {op: OpPeek, mode: linear.ModeQueue},
	"queue_size":     {op: OpSize, mode: linear.ModeQueue},
	"queue_capacity": {op: OpCapacity, mode: linear.ModeQueue},
	"queue_display":  {op: OpDisplay, mode: linear.ModeQueue},
}

// ParseCommand resolves name case-insensitively. Dashes and spaces are
// accepted in place of underscores.
func ParseCommand(name string) (Command, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	e, ok := vocabulary[key]
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	return Command{Name: key, Op: e.op, Mode: e.mode}, nil
}

// CommandNames returns every accepted command name.
func CommandNames() []string {
	names := make([]string, 0, len(vocabulary))
	for name := range vocabulary {
		names = append(names, name)
	}
	return names
}
