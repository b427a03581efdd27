package gpu

// BufferHandle identifies a buffer held by a Registry. Handles from the three
// namespaces are distinct types so one can never be passed where another is
// expected.
type BufferHandle uint64

// RenderPipelineHandle identifies a render pipeline held by a Registry.
type RenderPipelineHandle uint64

// ComputePipelineHandle identifies a compute pipeline held by a Registry.
type ComputePipelineHandle uint64

// handle constrains Registry keys to the handle namespace types above.
type handle interface {
	~uint64
}

// Registry is an insertion-ordered store of GPU objects keyed by strictly
// increasing handles starting at 0. Handles are never reused and entries are
// never removed: once issued, a handle resolves to the same object for the
// lifetime of the process. Resource replacement is modeled by adding a new
// entry and abandoning the old handle. Memory held by abandoned entries is
// not reclaimed, but a stale handle can never silently alias a different
// object.
//
// A Registry is not synchronized. All GPU objects, registries included, are
// owned by the OS event goroutine; the user-logic goroutine never touches
// them.
type Registry[H handle, T any] struct {
	entries []T
}

// Add inserts a newly constructed GPU object and returns its handle. The
// returned handle is strictly greater than every handle issued before it.
//
// Parameters:
//   - obj: the GPU object to store
//
// Returns:
//   - H: the handle under which obj is registered
func (r *Registry[H, T]) Add(obj T) H {
	h := H(len(r.entries))
	r.entries = append(r.entries, obj)
	return h
}

// Get resolves a handle to its object. A false result means the handle was
// never issued by this registry (or belongs to another namespace), which is a
// caller bug; callers that cannot tolerate it should use MustGet instead of
// ignoring the flag.
//
// Parameters:
//   - h: the handle to resolve
//
// Returns:
//   - T: the registered object, or the zero value if not found
//   - bool: true if the handle resolves
func (r *Registry[H, T]) Get(h H) (T, bool) {
	if uint64(h) >= uint64(len(r.entries)) {
		var zero T
		return zero, false
	}
	return r.entries[h], true
}

// MustGet resolves a handle and panics if it was never issued. This is the
// fail-fast policy for development builds; release code that chooses to
// tolerate misses uses Get and checks the flag explicitly.
func (r *Registry[H, T]) MustGet(h H) T {
	obj, ok := r.Get(h)
	if !ok {
		panic("gpu: handle was never issued by this registry")
	}
	return obj
}

// Len returns the number of registered objects.
func (r *Registry[H, T]) Len() int {
	return len(r.entries)
}

// Each calls fn for every entry in handle order. Used for teardown.
func (r *Registry[H, T]) Each(fn func(h H, obj T)) {
	for i, obj := range r.entries {
		fn(H(i), obj)
	}
}
