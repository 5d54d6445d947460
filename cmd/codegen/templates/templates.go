// Package templates renders the generated arity facades of the sigslot
// package. Everything here is mechanical string assembly: one SignalN
// type per arity, a ConnectJ method per leading-argument prefix, and
// the shared management surface.
package templates

import (
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// SignalsGen renders signals_gen.go for arities 1 through count and
// returns the gofmt'd source.
func SignalsGen(count int) (string, error) {
	if count < 1 {
		return "", fmt.Errorf("arity count must be at least 1, got %d", count)
	}

	var sb strings.Builder
	sb.WriteString(header)
	for n := 1; n <= count; n++ {
		if err := signalTmpl.Execute(&sb, newArity(n)); err != nil {
			return "", err
		}
	}

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return "", fmt.Errorf("generated source does not format: %w", err)
	}
	return string(src), nil
}

const header = `// Code generated by cmd/codegen. DO NOT EDIT.

package sigslot

import "github.com/signalkit/sigslot/internal"
`

// arity carries the rendered fragments for one SignalN type.
type arity struct {
	N          int
	TypeParams string // T0, T1 any
	TypeArgs   string // T0, T1
	EmitParams string // a0 T0, a1 T1
	EmitArgs   string // a0, a1
	Prefixes   []prefix
	Full       prefix
}

// prefix is one connect variant: a slot accepting the leading J
// arguments of the signal's list.
type prefix struct {
	J      int
	Method string // Connect or ConnectJ
	FnType string // func(T0, T1)
	Unbox  string // as[T0](args[0]), as[T1](args[1])
}

func newArity(n int) arity {
	a := arity{
		N:          n,
		TypeParams: joined(n, "T%d", ", ") + " any",
		TypeArgs:   joined(n, "T%d", ", "),
		EmitParams: joined(n, "a%d T%d", ", "),
		EmitArgs:   joined(n, "a%d", ", "),
		Full:       newPrefix(n, "Connect"),
	}
	for j := 0; j < n; j++ {
		a.Prefixes = append(a.Prefixes, newPrefix(j, fmt.Sprintf("Connect%d", j)))
	}
	return a
}

func newPrefix(j int, method string) prefix {
	return prefix{
		J:      j,
		Method: method,
		FnType: "func(" + joined(j, "T%d", ", ") + ")",
		Unbox:  joined(j, "as[T%d](args[%d])", ", "),
	}
}

// joined expands pattern for indices 0..n-1 and joins the results. The
// pattern may reference the index once or twice.
func joined(n int, pattern string, sep string) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		if strings.Count(pattern, "%d") == 2 {
			parts[i] = fmt.Sprintf(pattern, i, i)
		} else {
			parts[i] = fmt.Sprintf(pattern, i)
		}
	}
	return strings.Join(parts, sep)
}

var signalTmpl = template.Must(template.New("signal").Parse(`
// Signal{{.N}} is an event source emitting {{.N}} argument{{if gt .N 1}}s{{end}}.
//
// A Signal{{.N}} must be created with New{{.N}}; the zero value behaves like a
// closed signal.
type Signal{{.N}}[{{.TypeParams}}] struct {
	state *internal.State
}

// New{{.N}} creates an empty signal emitting {{.N}} argument{{if gt .N 1}}s{{end}}.
func New{{.N}}[{{.TypeParams}}]() *Signal{{.N}}[{{.TypeArgs}}] {
	return &Signal{{.N}}[{{.TypeArgs}}]{state: internal.NewState()}
}

// Connect registers a slot taking the full argument list.
// A nil fn yields an inert connection.
func (s *Signal{{.N}}[{{.TypeArgs}}]) Connect(fn {{.Full.FnType}}, opts ...ConnectOption) Connection {
	if s == nil || fn == nil {
		return Connection{}
	}
	return connect(s.state, func(args []any) {
		fn({{.Full.Unbox}})
	}, opts)
}
{{range .Prefixes}}
// {{.Method}} registers a slot taking the leading {{.J}} arguments.
// A nil fn yields an inert connection.
func (s *Signal{{$.N}}[{{$.TypeArgs}}]) {{.Method}}(fn {{.FnType}}, opts ...ConnectOption) Connection {
	if s == nil || fn == nil {
		return Connection{}
	}
	return connect(s.state, func(args []any) {
		fn({{.Unbox}})
	}, opts)
}
{{end}}
// Emit fires the signal synchronously on the calling goroutine. Slots
// run in priority order, outside the signal's lock; a slot that panics
// does not stop its siblings.
func (s *Signal{{.N}}[{{.TypeArgs}}]) Emit({{.EmitParams}}) {
	if s == nil || s.state == nil {
		return
	}
	s.state.Emit([]any{ {{.EmitArgs}} })
}

// Disconnect removes the named tag and every slot registered under it.
// It reports whether the tag existed.
func (s *Signal{{.N}}[{{.TypeArgs}}]) Disconnect(tag string) bool {
	if s == nil || s.state == nil {
		return false
	}
	return s.state.DisconnectTag(tag)
}

// DisconnectAll immediately removes every slot and tag.
func (s *Signal{{.N}}[{{.TypeArgs}}]) DisconnectAll() {
	if s != nil && s.state != nil {
		s.state.Clear()
	}
}

// Len returns the number of connected slots not pending removal.
func (s *Signal{{.N}}[{{.TypeArgs}}]) Len() int {
	if s == nil || s.state == nil {
		return 0
	}
	return s.state.Count()
}

// Empty reports whether the signal has no connected slots.
func (s *Signal{{.N}}[{{.TypeArgs}}]) Empty() bool { return s.Len() == 0 }

// Valid reports whether the signal still owns live shared state.
func (s *Signal{{.N}}[{{.TypeArgs}}]) Valid() bool {
	return s != nil && s.state != nil && !s.state.Closed()
}

// Close disconnects everything and permanently invalidates the signal:
// further Connect calls return inert connections and Emit is a safe
// no-op. Outstanding connection handles degrade to "not connected".
func (s *Signal{{.N}}[{{.TypeArgs}}]) Close() {
	if s != nil && s.state != nil {
		s.state.Close()
	}
}
`))
