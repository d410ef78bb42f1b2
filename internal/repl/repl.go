// Package repl runs an interactive line-oriented session against a Dispatcher.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-linear/internal/simulator"
)

const prompt = "> "

// Run reads "<command> [value]" lines from in until EOF, quit or ctx is done.
// After each command it prints the collection and the status line.
// Cancelling ctx returns promptly even while a read is blocked.
func Run(ctx context.Context, in io.Reader, out io.Writer, d *simulator.Dispatcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	res := d.Snapshot()
	fmt.Fprintf(out, "Mode: %s, capacity %d. Type help for commands.\n", res.Mode, res.Capacity)
	fmt.Fprintln(out, Render(res))

	lines, readErr := readLines(ctx, in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return errors.Wrap(err, "repl: read input")
				}
				return nil
			}
			line = l
		}

		name, value := splitLine(line)
		switch strings.ToLower(name) {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(out, "Bye.")
			return nil
		case "help", "?":
			fmt.Fprintln(out, Help())
			continue
		}

		res, _ := d.Execute(ctx, name, value)
		fmt.Fprintln(out, Render(res))
		fmt.Fprintln(out, res.Message)
	}
}

// readLines scans in on its own goroutine. The error channel receives the
// scanner error (possibly nil) before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		defer func() {
			errc <- scanner.Err()
			close(lines)
		}()
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines, errc
}

// Help lists the accepted commands.
func Help() string {
	names := simulator.CommandNames()
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Usage: <command> [value]\n")
	b.WriteString("  push 5 | pop | peek | mode queue | display | quit\n")
	b.WriteString("Commands: ")
	b.WriteString(strings.Join(names, ", "))
	return b.String()
}

func splitLine(line string) (name, value string) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	}
	// "stack push 4" reads as stack_push 4.
	if _, err := simulator.ParseCommand(fields[0] + "_" + fields[1]); err == nil {
		return fields[0] + "_" + fields[1], strings.Join(fields[2:], " ")
	}
	return fields[0], strings.Join(fields[1:], " ")
}
