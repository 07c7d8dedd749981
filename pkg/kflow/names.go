package kflow

import (
	"strings"

	"github.com/pkg/errors"
)

const maxPathNames = 64

var (
	ErrUnknownPath  = errors.New("unknown path")
	ErrInvalidPaths = errors.New("invalid path names")

	allPathsKeywords = []string{"*", "all"}
)

// PathNames assigns bits to path names in declaration order, so paths can be
// selected from configuration.
type PathNames struct {
	names []string
	bits  map[string]PathMask
}

func NewPathNames(names ...string) (*PathNames, error) {
	if len(names) > maxPathNames {
		return nil, errors.Wrapf(ErrInvalidPaths, "%d names exceed the %d available bits", len(names), maxPathNames)
	}

	pn := &PathNames{
		names: make([]string, 0, len(names)),
		bits:  make(map[string]PathMask, len(names)),
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Wrapf(ErrInvalidPaths, "name at position %d is empty", i)
		}
		if isAllKeyword(name) {
			return nil, errors.Wrapf(ErrInvalidPaths, "%q is reserved", name)
		}
		if _, dup := pn.bits[name]; dup {
			return nil, errors.Wrapf(ErrInvalidPaths, "duplicate name %q", name)
		}
		pn.bits[name] = Bit(uint(i))
		pn.names = append(pn.names, name)
	}
	return pn, nil
}

func (pn *PathNames) Mask(name string) (PathMask, bool) {
	m, ok := pn.bits[name]
	return m, ok
}

// All is the union of every declared path.
func (pn *PathNames) All() PathMask {
	var all PathMask
	for _, m := range pn.bits {
		all |= m
	}
	return all
}

func (pn *PathNames) Names() []string {
	return append([]string(nil), pn.names...)
}

// Parse turns "a|b" into the union of the named paths. "*" and "all" select
// every declared path.
func (pn *PathNames) Parse(expr string) (PathMask, error) {
	var mask PathMask
	for _, part := range strings.Split(expr, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if isAllKeyword(part) {
			mask |= pn.All()
			continue
		}
		m, ok := pn.bits[part]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownPath, "%q in %q", part, expr)
		}
		mask |= m
	}
	return mask, nil
}

// Format renders mask as declared names joined by "|". Bits without a name
// are left out.
func (pn *PathNames) Format(mask PathMask) string {
	parts := make([]string, 0, len(pn.names))
	for _, name := range pn.names {
		if mask.Matches(pn.bits[name]) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

func isAllKeyword(s string) bool {
	for _, k := range allPathsKeywords {
		if strings.EqualFold(s, k) {
			return true
		}
	}
	return false
}
