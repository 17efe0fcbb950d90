// Package sort implements an in-place quicksort for slices of integers.
package sort

// Result carries the sorted slice together with the number of element swaps
// performed while sorting it.
type Result struct {
	// Sorted is the caller's slice, reordered in place.
	Sorted []int
	Swaps  int
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithScheme selects the partition scheme, Hoare is used by default.
func WithScheme(s Scheme) Option {
	return func(srt *Sorter) {
		srt.scheme = s
	}
}

// WithIterative makes the Sorter use an explicit work-list instead of recursion.
func WithIterative() Option {
	return func(srt *Sorter) {
		srt.iterative = true
	}
}

// WithObserver installs an observer called around every partition.
func WithObserver(o Observer) Option {
	return func(srt *Sorter) {
		if o != nil {
			srt.observer = o
		}
	}
}

// Sorter sorts slices of integers in place with quicksort. A Sorter only holds
// configuration and can be reused for any number of sequential calls.
type Sorter struct {
	scheme    Scheme
	iterative bool
	observer  Observer
}

// New returns a Sorter configured with Hoare partitioning, the recursive
// driver and no observer, unless overridden by opts.
func New(opts ...Option) *Sorter {
	srt := &Sorter{
		scheme:   Hoare,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(srt)
	}

	return srt
}

// Sort reorders s in place into non-decreasing order.
func (srt *Sorter) Sort(s []int) *Result {
	q := &quicksort{
		s:        s,
		scheme:   srt.scheme,
		observer: srt.observer,
	}
	if q.observer == nil {
		q.observer = nopObserver{}
	}
	if len(s) > 1 {
		if srt.iterative {
			q.iterate(0, len(s)-1)
		} else {
			q.recurse(0, len(s)-1)
		}
	}

	return &Result{
		Sorted: s,
		Swaps:  q.swaps,
	}
}

// Sort sorts s in place using the default Sorter and returns s.
func Sort(s []int) []int {
	return New().Sort(s).Sorted
}
