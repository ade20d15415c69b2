package interp

// Class is a single-level class value (spec.md §3 Class, §9 "constructor
// model": no `init` method, no inheritance — the parameter list itself
// names the fields the implicit constructor populates).
type Class struct {
	Name       string
	Methods    map[string]*Function
	InitParams []string
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return "class " + c.Name }
func (c *Class) Arity() int     { return len(c.InitParams) }

// FindMethod looks up a method by name, matching no ancestor chain since
// this language has no inheritance (spec.md Non-goals).
func (c *Class) FindMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Call constructs an Instance and binds InitParams to args as initial
// fields (spec.md §4.H "Class invocation").
func (c *Class) Call(in *Interpreter, args []Value) (Value, *RuntimeError) {
	inst := &Instance{class: c, fields: make(map[string]Value, len(c.InitParams))}
	for i, name := range c.InitParams {
		inst.fields[name] = args[i]
	}
	return inst, nil
}

// Instance is a mutable aggregate created by calling a class value
// (spec.md §3 Instance). Shared mutably: every binding of an instance
// observes the same fields map.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return i.class.Name + " instance" }

// Get implements property access (spec.md §4.H "Property access"): fields
// are searched before methods, and a method hit is bound to this instance.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if m, ok := i.class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set stores into the fields map, creating the field if absent.
func (i *Instance) Set(name string, v Value) {
	i.fields[name] = v
}
