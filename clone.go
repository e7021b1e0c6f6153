package nodegraph

import "reflect"

// Clone returns a deep copy of the node. Property values are copied
// recursively, whatever their Go type.
func (n Node) Clone() Node {
	out := n
	if n.Ports != nil {
		out.Ports = make([]Port, len(n.Ports))
		copy(out.Ports, n.Ports)
	}
	if n.Properties != nil {
		out.Properties = cloneProperties(n.Properties)
	}
	return out
}

// Clone returns a deep copy of the graph that shares no memory with g.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes:  make([]Node, len(g.Nodes)),
		Edges:  make([]Edge, len(g.Edges)),
		Config: g.Config,
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = n.Clone()
	}
	copy(out.Edges, g.Edges)
	return out
}

// Normalized returns a deep copy with every transient selection flag
// cleared. Exports and history snapshots always go through it.
func (g Graph) Normalized() Graph {
	out := g.Clone()
	for i := range out.Nodes {
		out.Nodes[i].Selected = false
	}
	for i := range out.Edges {
		out.Edges[i].Selected = false
	}
	return out
}

func cloneProperties(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies a property value. The JSON shapes take a fast
// path; any other map, slice, array, pointer or struct is copied through
// reflection so no caller-held reference reaches the graph. Values must
// be acyclic.
func CloneValue(v any) any {
	switch t := v.(type) {
	case nil, string, bool, float64, int, int64:
		return v
	case map[string]any:
		return cloneProperties(t)
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = CloneValue(x)
		}
		return out
	}
	return cloneReflect(reflect.ValueOf(v)).Interface()
}

func cloneReflect(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(cloneReflect(iter.Key()), cloneReflect(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(cloneReflect(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			out.Index(i).Set(cloneReflect(v.Index(i)))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(cloneReflect(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(cloneReflect(v.Elem()))
		return out
	case reflect.Struct:
		// Unexported fields are copied by value only.
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := range v.NumField() {
			if f := out.Field(i); f.CanSet() {
				f.Set(cloneReflect(v.Field(i)))
			}
		}
		return out
	}
	return v
}
