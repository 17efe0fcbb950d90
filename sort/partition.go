package sort

// quicksort is the per call state: the slice being sorted and the swap counter.
type quicksort struct {
	s        []int
	scheme   Scheme
	observer Observer
	swaps    int
}

func (q *quicksort) swap(i, j int) {
	q.s[i], q.s[j] = q.s[j], q.s[i]
	q.swaps++
}

// medianOfThree orders s[lo], s[m] and s[hi] so that s[lo] <= s[m] <= s[hi]
// and returns m, the midpoint of [lo, hi].
func (q *quicksort) medianOfThree(lo, hi int) int {
	// lo+hi may overflow for large indexes
	m := lo + (hi-lo)/2
	if q.s[lo] > q.s[m] {
		q.swap(lo, m)
	}
	if q.s[lo] > q.s[hi] {
		q.swap(lo, hi)
	}
	if q.s[m] > q.s[hi] {
		q.swap(m, hi)
	}

	return m
}

// hoare partitions [lo, hi], hi > lo, and returns j such that lo <= j < hi and
// every element of [lo, j] is not greater than any element of [j+1, hi].
func (q *quicksort) hoare(lo, hi int) int {
	pivot := q.s[q.medianOfThree(lo, hi)]
	i := lo - 1
	j := hi + 1
	for {
		i++
		for q.s[i] < pivot {
			i++
		}
		j--
		for q.s[j] > pivot {
			j--
		}
		if i >= j {
			return j
		}
		q.swap(i, j)
	}
}

// lomuto partitions [lo, hi], hi > lo, and returns the final position p of
// the pivot. Elements of [lo, p-1] are <= s[p], elements of [p+1, hi] are > s[p].
func (q *quicksort) lomuto(lo, hi int) int {
	m := q.medianOfThree(lo, hi)
	pivot := q.s[m]
	i := lo - 1
	q.swap(m, hi)
	for k := lo; k < hi; k++ {
		if q.s[k] <= pivot {
			i++
			q.swap(i, k)
		}
	}
	i++
	q.swap(i, hi)

	return i
}

// split partitions the active range [lo, hi] with the configured scheme and
// returns the two sub-ranges which still have to be sorted.
func (q *quicksort) split(lo, hi int) (span, span) {
	q.observer.BeforePartition(q.s, lo, hi)
	var left, right span
	var p int
	switch q.scheme {
	case Lomuto:
		p = q.lomuto(lo, hi)
		left, right = span{lo, p - 1}, span{p + 1, hi}
	default:
		p = q.hoare(lo, hi)
		left, right = span{lo, p}, span{p + 1, hi}
	}
	q.observer.AfterPartition(q.s, lo, hi, p)

	return left, right
}
