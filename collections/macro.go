package collections

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// MacroFunc is a runtime extension callable on any container.
//
// The receiver arrives as an any so one macro can serve every
// Collection[T] instantiation and every *lazy.List[T]. Type-switch on it
// inside the macro.
type MacroFunc func(receiver any, args ...any) any

// macroTable maps names to macros. It is the only package-level mutable
// state and is safe for concurrent use.
type macroTable struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

var macros = &macroTable{macros: map[string]MacroFunc{}}

func (t *macroTable) set(name string, fn MacroFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.macros[name] = fn
}

func (t *macroTable) get(name string) (MacroFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.macros[name]
	return fn, ok
}

func (t *macroTable) remove(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.macros[name]
	delete(t.macros, name)
	return ok
}

func (t *macroTable) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.macros = map[string]MacroFunc{}
}

func (t *macroTable) names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := lo.Keys(t.macros)
	slices.Sort(names)
	return names
}

// RegisterMacro registers fn under name, replacing any previous macro of
// that name.
//
//	collections.RegisterMacro("evens", func(recv any, _ ...any) any {
//	    switch c := recv.(type) {
//	    case *collections.Collection[int]:
//	        return c.Filter(func(n, _ int) bool { return n%2 == 0 })
//	    case *lazy.List[int]:
//	        return c.Filter(func(n int) bool { return n%2 == 0 })
//	    }
//	    return nil
//	})
func RegisterMacro(name string, fn MacroFunc) { macros.set(name, fn) }

// UnregisterMacro removes the macro called name and reports whether it was
// registered.
func UnregisterMacro(name string) bool { return macros.remove(name) }

// HasMacro reports whether a macro called name is registered.
func HasMacro(name string) bool {
	_, ok := macros.get(name)
	return ok
}

// Macros returns the registered macro names in sorted order.
func Macros() []string { return macros.names() }

// FlushMacros removes every registered macro. Tests use it to isolate
// registrations.
func FlushMacros() { macros.reset() }

// CallMacro runs the macro called name on receiver. It returns
// [ErrMacroNotFound] when nothing is registered under name.
func CallMacro(name string, receiver any, args ...any) (any, error) {
	fn, ok := macros.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(receiver, args...), nil
}

// Macro runs the macro called name with c as the receiver.
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
