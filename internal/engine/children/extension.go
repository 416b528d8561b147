package children

import "go.trai.ch/grove/internal/core/domain"

// Extension aggregates per-node data during deep recomputation.
//
// InitData is called once per rebuilt deep set; AddNode is then called once
// for each descendant with that same value, in registration order across
// extensions. D is usually a pointer or map so AddNode can accumulate into
// it. Implementations must not call back into the Registry.
type Extension[D any] interface {
	InitData() D
	AddNode(node domain.NodeID, data D)
}

// Funcs adapts a pair of functions to Extension.
type Funcs[D any] struct {
	Init func() D
	Add  func(node domain.NodeID, data D)
}

// InitData calls f.Init.
func (f Funcs[D]) InitData() D {
	return f.Init()
}

// AddNode calls f.Add.
func (f Funcs[D]) AddNode(node domain.NodeID, data D) {
	f.Add(node, data)
}

// Accessor pulls one extension's aggregate out of a Deep result.
// It returns the zero value for results computed before the extension was
// registered.
type Accessor[D any] func(d *Deep) D

// Register adds ext to the extensions of r and returns its accessor.
// Registration is permanent for the lifetime of r.
func Register[D any](r *Registry, ext Extension[D]) Accessor[D] {
	idx := r.extensions.add(typed[D]{ext: ext})
	return func(d *Deep) D {
		var zero D
		if d == nil || idx >= len(d.data) {
			return zero
		}
		v, _ := d.data[idx].(D)
		return v
	}
}

// Extensions is the append-only list of extensions owned by a Registry.
type Extensions struct {
	list []extension
}

// Len returns the number of registered extensions.
func (e *Extensions) Len() int {
	return len(e.list)
}

func (e *Extensions) add(ext extension) int {
	e.list = append(e.list, ext)
	return len(e.list) - 1
}

func (e *Extensions) initData() []any {
	if len(e.list) == 0 {
		return nil
	}
	data := make([]any, len(e.list))
	for i, ext := range e.list {
		data[i] = ext.initData()
	}
	return data
}

func (e *Extensions) addNode(data []any, node domain.NodeID) {
	// data may predate later registrations.
	for i := range min(len(data), len(e.list)) {
		e.list[i].addNode(node, data[i])
	}
}

type extension interface {
	initData() any
	addNode(node domain.NodeID, data any)
}

type typed[D any] struct {
	ext Extension[D]
}

func (t typed[D]) initData() any {
	return t.ext.InitData()
}

func (t typed[D]) addNode(node domain.NodeID, data any) {
	// A nil InitData for an interface D arrives as an untyped nil.
	v, _ := data.(D)
	t.ext.AddNode(node, v)
}
