package sort

import (
	"github.com/golang/glog"
)

// Observer gets notified around every partition of an active range [lo, hi].
// Implementations must not modify s.
type Observer interface {
	BeforePartition(s []int, lo, hi int)
	// AfterPartition receives the split index returned by the partition scheme.
	AfterPartition(s []int, lo, hi, split int)
}

var _ Observer = nopObserver{}

type nopObserver struct{}

func (nopObserver) BeforePartition([]int, int, int)     {}
func (nopObserver) AfterPartition([]int, int, int, int) {}

var _ Observer = &logObserver{}

type logObserver struct {
	level glog.Level
}

// NewLogObserver returns an Observer tracing every partition through glog
// at verbosity level.
func NewLogObserver(level glog.Level) Observer {
	return &logObserver{
		level: level,
	}
}

func (l *logObserver) BeforePartition(s []int, lo, hi int) {
	if !glog.V(l.level) {
		return
	}
	glog.Infof("before partition [%d:%d]: %v", lo, hi, s[lo:hi+1])
}

func (l *logObserver) AfterPartition(s []int, lo, hi, split int) {
	if !glog.V(l.level) {
		return
	}
	glog.Infof("after partition [%d:%d] split at %d: %v", lo, hi, split, s[lo:hi+1])
}
