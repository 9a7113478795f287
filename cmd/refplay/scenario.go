package main

import (
	"fmt"
	"io"

	"github.com/wippyai/refptr/handle"
	"github.com/wippyai/refptr/refcount"
)

type frame = refcount.Box[string]

type scenarioStep struct {
	run   func()
	label string
	want  int64
}

// runScenario walks one object through clone, drop, move and raw assignment,
// printing the count after every step.
func runScenario(w io.Writer, p palette) error {
	destroyed := 0
	obj := refcount.NewBox("frame", func(string) { destroyed++ })

	var a, b, c *handle.Ref[*frame]
	steps := []scenarioStep{
		{label: "a = New(obj)", want: 1, run: func() { a = handle.New(obj) }},
		{label: "b = a.Clone()", want: 2, run: func() { b = a.Clone() }},
		{label: "b.Drop()", want: 1, run: func() { b.Drop() }},
		{label: "c = a.Move()", want: 1, run: func() { c = a.Move() }},
		{label: "a.Set(c.Get())", want: 2, run: func() { a.Set(c.Get()) }},
		{label: "c.Drop(); a.Drop()", want: 0, run: func() { c.Drop(); a.Drop() }},
	}

	fmt.Fprintln(w, p.render(titleStyle, "refplay: handle lifecycle"))
	fmt.Fprintln(w)

	for i, s := range steps {
		s.run()
		got := obj.RefCount()
		line := fmt.Sprintf("%d. %-20s count=%s  a=%-6s b=%-6s c=%-6s",
			i+1, p.render(stepStyle, s.label), p.render(countStyle, fmt.Sprint(got)),
			a.State(), b.State(), c.State())
		fmt.Fprintln(w, line)
		if got != s.want {
			return fmt.Errorf("step %d (%s): count %d, want %d", i+1, s.label, got, s.want)
		}
	}

	fmt.Fprintln(w)
	if destroyed != 1 {
		return fmt.Errorf("object destroyed %d times, want 1", destroyed)
	}
	fmt.Fprintln(w, p.render(okStyle, "object destroyed exactly once"))
	return nil
}
