package sort

// span is an inclusive range of indexes, ranges with lo >= hi are already sorted.
type span struct {
	lo int
	hi int
}

func (r span) active() bool {
	return r.lo < r.hi
}

func (r span) len() int {
	if !r.active() {
		return 0
	}
	return r.hi - r.lo + 1
}

func (q *quicksort) recurse(lo, hi int) {
	if lo >= hi {
		return
	}
	left, right := q.split(lo, hi)
	q.recurse(left.lo, left.hi)
	q.recurse(right.lo, right.hi)
}

// iterate sorts [lo, hi] without recursion. The larger side of every partition
// is deferred to the work-list while the smaller one is processed right away,
// so the work-list never holds more than O(log N) ranges.
func (q *quicksort) iterate(lo, hi int) {
	work := []span{{lo, hi}}
	for len(work) > 0 {
		r := work[len(work)-1]
		work = work[:len(work)-1]
		for r.active() {
			left, right := q.split(r.lo, r.hi)
			if left.len() < right.len() {
				left, right = right, left
			}
			if left.active() {
				work = append(work, left)
			}
			r = right
		}
	}
}
