package indexedsumtree

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// oracle is a plain-slice reference model; every random operation is
// applied to both it and a Tree, and their sizes are compared after each
// step. No property-based testing framework (rapid, gopter, ...) turned
// up in the retrieved corpus, so this randomized-sequence-plus-oracle
// style is used instead, matching the teacher's own math/rand-driven
// workload generators.
type oracle struct {
	data []int
}

func (o *oracle) insert(pos, v int) {
	o.data = append(o.data, 0)
	copy(o.data[pos:], o.data[pos-1:])
	o.data[pos-1] = v
}

func (o *oracle) erase(pos int) {
	o.data = append(o.data[:pos-1], o.data[pos:]...)
}

func (o *oracle) sum(l, r int) int {
	var total int
	for i := l; i <= r; i++ {
		total += o.data[i-1]
	}
	return total
}

func (o *oracle) update(l, r, diff int) {
	for i := l; i <= r; i++ {
		o.data[i-1] += diff
	}
}

func snapshot(tr *Tree[int]) []int {
	out := make([]int, 0, tr.Size())
	for c := tr.First(); !c.End(); {
		v, _ := c.Get()
		out = append(out, v)
		c, _ = c.Next()
	}
	return out
}

// TestRandomizedSequenceMatchesOracle drives a long sequence of random
// inserts, erases, sums, and updates against both a Tree and a plain
// slice, checking sizes after every step, each Sum against the slice,
// and the full sequence once at the end.
func TestRandomizedSequenceMatchesOracle(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tr := New[int]()
	o := &oracle{}

	const steps = 2000
	for step := 0; step < steps; step++ {
		n := len(o.data)
		switch {
		case n == 0 || r.Intn(4) == 0:
			pos := 1 + r.Intn(n+1)
			v := r.Intn(201) - 100
			if err := tr.Insert(pos, v); err != nil {
				t.Fatalf("step %d: Insert(%d, %d): %v", step, pos, v, err)
			}
			o.insert(pos, v)

		case r.Intn(3) == 0:
			pos := 1 + r.Intn(n)
			if err := tr.Erase(pos); err != nil {
				t.Fatalf("step %d: Erase(%d): %v", step, pos, err)
			}
			o.erase(pos)

		case r.Intn(2) == 0:
			l := 1 + r.Intn(n)
			rr := l + r.Intn(n-l+1)
			diff := r.Intn(21) - 10
			if err := tr.Update(l, rr, diff); err != nil {
				t.Fatalf("step %d: Update(%d, %d, %d): %v", step, l, rr, diff, err)
			}
			o.update(l, rr, diff)

		default:
			l := 1 + r.Intn(n)
			rr := l + r.Intn(n-l+1)
			got, err := tr.Sum(l, rr)
			if err != nil {
				t.Fatalf("step %d: Sum(%d, %d): %v", step, l, rr, err)
			}
			if want := o.sum(l, rr); got != want {
				t.Fatalf("step %d: Sum(%d, %d) = %d, want %d", step, l, rr, got, want)
			}
		}

		if tr.Size() != len(o.data) {
			t.Fatalf("step %d: Size() = %d, want %d", step, tr.Size(), len(o.data))
		}
	}

	if diff := cmp.Diff(o.data, snapshot(tr)); diff != "" {
		t.Fatalf("final sequence mismatch (-oracle +tree):\n%s", diff)
	}
}

// TestRankRoundTrip checks that indexOf(At(pos)) == pos for every
// position, after a run of random mutations.
func TestRankRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	tr := New[int]()
	n := 0
	for i := 0; i < 500; i++ {
		pos := 1 + r.Intn(n+1)
		if err := tr.Insert(pos, r.Int()); err != nil {
			t.Fatalf("Insert(%d): %v", pos, err)
		}
		n++
	}

	for pos := 1; pos <= n; pos++ {
		c, err := tr.At(pos)
		if err != nil {
			t.Fatalf("At(%d): %v", pos, err)
		}
		idx, err := c.Index()
		if err != nil {
			t.Fatalf("Index() at %d: %v", pos, err)
		}
		if idx != pos {
			t.Fatalf("At(%d).Index() = %d, want %d", pos, idx, pos)
		}
	}
}

// TestSizeAndSumAgreeWithScan re-derives size and total sum from a fresh
// in-order scan and compares against the root's own bookkeeping.
func TestSizeAndSumAgreeWithScan(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tr := New[int]()
	n := 0
	for i := 0; i < 500; i++ {
		pos := 1 + r.Intn(n+1)
		if err := tr.Insert(pos, r.Intn(100)); err != nil {
			t.Fatalf("Insert(%d): %v", pos, err)
		}
		n++
	}

	scanned := snapshot(tr)
	if len(scanned) != tr.Size() {
		t.Fatalf("scan length = %d, Size() = %d", len(scanned), tr.Size())
	}
	var want int
	for _, v := range scanned {
		want += v
	}
	got, err := tr.Sum(1, tr.Size())
	if err != nil {
		t.Fatalf("Sum(1, %d): %v", tr.Size(), err)
	}
	if got != want {
		t.Fatalf("Sum(1, size) = %d, want %d (scan total)", got, want)
	}
}
