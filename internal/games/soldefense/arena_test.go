package soldefense

import "testing"

func collect(a *Arena[int]) []int {
	var out []int
	for _, v := range a.All() {
		out = append(out, *v)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArenaInsertOrder(t *testing.T) {
	a := NewArena[int](4)
	for i := 1; i <= 5; i++ {
		a.Insert(i)
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", a.Len())
	}
	if got := collect(a); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("All() = %v", got)
	}
}

func TestArenaRemoveReturnsNext(t *testing.T) {
	a := NewArena[int](8)
	for i := 0; i < 6; i++ {
		a.Insert(i)
	}

	// Remove every even value in one forward pass.
	var visited []int
	for h := a.First(); h != NilHandle; {
		v := *a.Get(h)
		visited = append(visited, v)
		if v%2 == 0 {
			h = a.Remove(h)
			continue
		}
		h = a.Next(h)
	}

	if !equalInts(visited, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("visited = %v, expected every element once", visited)
	}
	if got := collect(a); !equalInts(got, []int{1, 3, 5}) {
		t.Errorf("All() after removal = %v, expected [1 3 5]", got)
	}
}

func TestArenaRemoveTail(t *testing.T) {
	a := NewArena[int](2)
	a.Insert(1)
	h := a.Insert(2)

	if next := a.Remove(h); next != NilHandle {
		t.Errorf("Remove(tail) = %d, expected NilHandle", next)
	}
	a.Insert(3)
	if got := collect(a); !equalInts(got, []int{1, 3}) {
		t.Errorf("All() = %v, expected [1 3]", got)
	}
}

func TestArenaStaleHandles(t *testing.T) {
	a := NewArena[int](2)
	h := a.Insert(7)
	a.Remove(h)

	if a.Get(h) != nil {
		t.Error("Get() on a freed handle should return nil")
	}
	if next := a.Remove(h); next != NilHandle {
		t.Errorf("double Remove() = %d, expected NilHandle", next)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after double remove, expected 0", a.Len())
	}
	if a.Get(NilHandle) != nil || a.Get(99) != nil {
		t.Error("Get() out of range should return nil")
	}
}

func TestArenaReusesSlots(t *testing.T) {
	a := NewArena[int](4)
	h1 := a.Insert(1)
	a.Insert(2)
	a.Remove(h1)

	h3 := a.Insert(3)
	if h3 != h1 {
		t.Errorf("Insert() = %d, expected freed slot %d", h3, h1)
	}
	if got := collect(a); !equalInts(got, []int{2, 3}) {
		t.Errorf("reused slot must join at the end, All() = %v", got)
	}
}

func TestArenaAllToleratesRemoval(t *testing.T) {
	a := NewArena[int](8)
	for i := 0; i < 5; i++ {
		a.Insert(i)
	}

	var seen []int
	for h, v := range a.All() {
		seen = append(seen, *v)
		a.Remove(h)
	}
	if !equalInts(seen, []int{0, 1, 2, 3, 4}) {
		t.Errorf("seen = %v", seen)
	}
	if a.Len() != 0 || a.First() != NilHandle {
		t.Errorf("arena not empty: Len() = %d", a.Len())
	}
}

func TestArenaClear(t *testing.T) {
	a := NewArena[int](2)
	a.Insert(1)
	a.Insert(2)
	a.Clear()

	if a.Len() != 0 || a.First() != NilHandle {
		t.Error("Clear() should empty the arena")
	}
	a.Insert(9)
	if got := collect(a); !equalInts(got, []int{9}) {
		t.Errorf("All() after Clear() = %v", got)
	}
}
