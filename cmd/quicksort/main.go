package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	qsort "github.com/sbezverk/quicksort/sort"
	"golang.org/x/exp/slices"
)

var (
	errNoInput        = errors.New("no integers to sort")
	errUnknownExample = errors.New("unknown example")
)

var examples = map[string][]int{
	"e1": {2, 6, 5, 9, 4, 1, 7},
	"e2": {9, 6, 5, 0, 8, 2, 4, 7},
	"e3": {4, 3, 2, 1},
	"e4": {1, 2, 3, 4},
	"e5": {3, 1, 4, 5, 9, 1, 2, 6, 8, 5, 7},
	"e6": {3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
}

var (
	scheme     string
	iterative  bool
	trace      bool
	traceLevel int
	example    string
)

func init() {
	flag.StringVar(&scheme, "scheme", "hoare", "partition scheme, hoare or lomuto")
	flag.BoolVar(&iterative, "iterative", false, "use an explicit work-list instead of recursion")
	flag.BoolVar(&trace, "trace", false, "log every partition through glog")
	flag.IntVar(&traceLevel, "trace-level", 5, "glog verbosity level of the partition trace")
	flag.StringVar(&example, "example", "", "sort one of the built-in data sets e1..e6 when no integers are given")
}

func parseInts(args []string) ([]int, error) {
	s := make([]int, 0, len(args))
	for _, arg := range args {
		for _, f := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q: %w", f, err)
			}
			s = append(s, v)
		}
	}
	return s, nil
}

func input(args []string, name string) ([]int, error) {
	if len(args) != 0 {
		return parseInts(args)
	}
	if name == "" {
		return nil, errNoInput
	}
	e, ok := examples[name]
	if !ok {
		known := make([]string, 0, len(examples))
		for k := range examples {
			known = append(known, k)
		}
		slices.Sort(known)
		return nil, fmt.Errorf("%w %q, known examples: %s", errUnknownExample, name, strings.Join(known, ", "))
	}
	return append([]int(nil), e...), nil
}

func options() ([]qsort.Option, error) {
	sc, err := qsort.ParseScheme(scheme)
	if err != nil {
		return nil, err
	}
	opts := []qsort.Option{qsort.WithScheme(sc)}
	if iterative {
		opts = append(opts, qsort.WithIterative())
	}
	if trace {
		opts = append(opts, qsort.WithObserver(qsort.NewLogObserver(glog.Level(traceLevel))))
	}
	return opts, nil
}

func run(w io.Writer, args []string) error {
	s, err := input(args, example)
	if err != nil {
		return err
	}
	opts, err := options()
	if err != nil {
		return err
	}
	unsorted := fmt.Sprint(s)
	r := qsort.New(opts...).Sort(s)
	glog.V(5).Infof("sorted %d integers with %s partitioning", len(s), scheme)
	fmt.Fprintf(w, "Unsorted array: %s\nSorted array: %v\nSwap count: %d\n", unsorted, r.Sorted, r.Swaps)

	return nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(os.Stdout, flag.Args()); err != nil {
		glog.Errorf("failed to sort with error: %+v", err)
		glog.Flush()
		os.Exit(1)
	}
}
