package compiler

import (
	"fmt"
	"reflect"
)

// DefaultArenaSize is the AST arena budget for one compilation. It exceeds
// any realistic input for this language.
const DefaultArenaSize = 4 * 1024 * 1024

// arenaAlign rounds every charge up so any node variant is suitably aligned.
const arenaAlign = 8

// Arena is a bump-style region allocator for AST nodes. It hands out fresh
// zeroed nodes and never frees them individually; everything it allocated
// dies together when the arena is dropped at the end of the compilation.
type Arena struct {
	capacity int
	used     int
}

// NewArena returns an arena with a fixed byte capacity.
func NewArena(capacity int) *Arena {
	return &Arena{capacity: capacity}
}

// Used reports the bytes charged so far.
func (a *Arena) Used() int { return a.used }

// Alloc charges the arena for one value of type T and returns a fresh
// zeroed node. Allocation past capacity is an unrecoverable internal error.
func Alloc[T any](a *Arena) *T {
	size := int(reflect.TypeOf((*T)(nil)).Elem().Size())
	size = (size + arenaAlign - 1) &^ (arenaAlign - 1)
	if a.used+size > a.capacity {
		panic(fmt.Sprintf("arena exhausted: %d bytes requested, %d of %d used", size, a.used, a.capacity))
	}
	a.used += size
	return new(T)
}
