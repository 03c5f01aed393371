package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/patterns/internal/ports"
	"github.com/alexisbeaulieu97/patterns/internal/theme"
	"github.com/alexisbeaulieu97/patterns/internal/themebinding"
)

type scriptOp string

const (
	opGet         scriptOp = "get"
	opToggle      scriptOp = "toggle"
	opSet         scriptOp = "set"
	opSubscribe   scriptOp = "subscribe"
	opUnsubscribe scriptOp = "unsubscribe"
)

type scriptStep struct {
	op    scriptOp
	theme theme.Theme
}

func (s scriptStep) String() string {
	if s.op == opSet {
		return fmt.Sprintf("%s=%s", s.op, s.theme)
	}
	return string(s.op)
}

func parseScript(script string) ([]scriptStep, error) {
	var steps []scriptStep
	for i, raw := range strings.Split(script, ",") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}

		name, arg, hasArg := strings.Cut(token, "=")
		if !hasArg {
			name, arg, hasArg = strings.Cut(token, ":")
		}

		switch op := scriptOp(name); op {
		case opGet, opToggle, opSubscribe, opUnsubscribe:
			if hasArg {
				return nil, fmt.Errorf("script step %d: %s takes no argument", i+1, op)
			}
			steps = append(steps, scriptStep{op: op})
		case opSet:
			t, err := theme.Parse(arg)
			if err != nil {
				return nil, fmt.Errorf("script step %d: %w", i+1, err)
			}
			steps = append(steps, scriptStep{op: op, theme: t})
		default:
			return nil, fmt.Errorf("script step %d: unknown step %q", i+1, raw)
		}
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}
	return steps, nil
}

// runScript executes steps against store and narrates each one. A single
// observer binding stands in for a UI consumer.
func runScript(store ports.ThemeStore, out io.Writer, steps []scriptStep) error {
	observer := themebinding.New(store, func(t theme.Theme) {
		fmt.Fprintf(out, "  observer notified: %s\n", t)
	})
	defer observer.Unmount()

	for _, step := range steps {
		fmt.Fprintf(out, "> %s\n", step)

		switch step.op {
		case opToggle:
			store.ToggleTheme()
		case opSet:
			if err := store.SetTheme(step.theme); err != nil {
				return err
			}
		case opSubscribe:
			if observer.Mounted() {
				fmt.Fprintln(out, "  observer already subscribed")
				break
			}
			observer.Mount()
			fmt.Fprintln(out, "  observer subscribed")
		case opUnsubscribe:
			if !observer.Mounted() {
				fmt.Fprintln(out, "  observer not subscribed")
				break
			}
			observer.Unmount()
			fmt.Fprintln(out, "  observer unsubscribed")
		}

		fmt.Fprintf(out, "  theme: %s\n", store.Theme())
	}
	return nil
}
