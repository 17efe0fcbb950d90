package sort

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownScheme is returned by ParseScheme for a name it does not recognize
	ErrUnknownScheme = errors.New("unknown partition scheme")
)

// Scheme identifies the partition scheme used by a Sorter
type Scheme uint8

const (
	Hoare Scheme = iota
	Lomuto
)

func (s Scheme) String() string {
	switch s {
	case Hoare:
		return "hoare"
	case Lomuto:
		return "lomuto"
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// ParseScheme converts a case insensitive scheme name into a Scheme
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hoare", "":
		return Hoare, nil
	case "lomuto":
		return Lomuto, nil
	}
	return Hoare, fmt.Errorf("%w %q", ErrUnknownScheme, name)
}
