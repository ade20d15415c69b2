package interp

import "fmt"

// Environment is a single scope frame (spec.md §4.G): two maps (variables,
// classes) plus an optional pointer to the enclosing frame. Grounded on the
// teacher's runtime.Environment, generalized to also hold class bindings
// (this language's classes are a distinct namespace from variables) and to
// expose GetAt/AssignAt for the resolver's distance-addressed access.
type Environment struct {
	vars    map[string]Value
	classes map[string]*Class
	outer   *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a scope enclosed by outer (spec.md §4.G
// "Block: push a new frame enclosing the current one").
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), outer: outer}
}

// DefineVar inserts or overwrites name in the current frame (spec.md §4.G
// "define_var: insert/overwrite in the current frame").
func (e *Environment) DefineVar(name string, v Value) {
	e.vars[name] = v
}

// AssignVar walks outward until name is found and overwrites it there.
func (e *Environment) AssignVar(name string, v Value) error {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = v
			return nil
		}
	}
	return fmt.Errorf("undefined variable %q", name)
}

// GetVar walks outward and returns the first binding found.
func (e *Environment) GetVar(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetAt moves exactly distance hops outward, then reads name only in that
// frame (spec.md §4.G "used for resolved local names").
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	env := e.ancestor(distance)
	v, ok := env.vars[name]
	return v, ok
}

// AssignAt moves exactly distance hops outward, then writes name only in
// that frame.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	env := e.ancestor(distance)
	env.vars[name] = v
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// DefineClass inserts name into the current frame's class namespace.
func (e *Environment) DefineClass(name string, c *Class) {
	if e.classes == nil {
		e.classes = make(map[string]*Class)
	}
	e.classes[name] = c
}

// GetClass walks outward only, never via the resolve map (spec.md §4.G
// "class lookup only walks outward").
func (e *Environment) GetClass(name string) (*Class, bool) {
	for env := e; env != nil; env = env.outer {
		if env.classes != nil {
			if c, ok := env.classes[name]; ok {
				return c, true
			}
		}
	}
	return nil, false
}
