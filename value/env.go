package value

// Env is one frame of the lexically nested binding chain: a single
// (name, value) slot plus a link to the enclosing scope. Frames are
// append-only (Extend never mutates an existing Env); the bound slot
// itself is mutable to support set!, define, and letrec back-patching.
//
// Closures capture a *Env by reference, so frame sharing is what makes
// capture O(1) and lets set! inside one closure be observed by any
// other closure over the same frame.
type Env struct {
	name   string
	value  Value
	parent *Env
}

// Empty returns a fresh, empty environment chain.
func Empty() *Env { return nil }

// Extend returns a new chain with one new frame binding name to val in
// front of env. It never mutates env.
func Extend(name string, val Value, env *Env) *Env {
	return &Env{name: name, value: val, parent: env}
}

// Find walks the chain head-first and returns the first binding for
// name. ok is false if no frame in the chain binds it.
func Find(name string, env *Env) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if e.name == name {
			return e.value, true
		}
	}
	return nil, false
}

// Modify locates the innermost frame binding name and overwrites its
// slot. If no such frame exists this is silently a no-op: callers are
// expected to have established the slot via Extend first (define,
// letrec back-patching).
func Modify(name string, val Value, env *Env) {
	for e := env; e != nil; e = e.parent {
		if e.name == name {
			e.value = val
			return
		}
	}
}
