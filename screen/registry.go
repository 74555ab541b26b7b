package screen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned for names and indices missing from the
// registry. Callers usually fall back to DefaultID.
var ErrNotFound = errors.New("screen: scaler not found")

// ID identifies a scaling algorithm.
type ID int

const (
	None ID = iota
	Point
	AdvMame2x
	SuperEagle
	Super2xSaI
)

// DefaultID is the documented fallback for unknown selections.
const DefaultID = Super2xSaI

// Info is one registry row. Name is used in configuration, Param builds
// command line flags such as -gsuper2xsai.
type Info struct {
	Name  string
	Param string
	ID    ID
}

var registry = [...]Info{
	{"none", "normal", None},
	{"Point", "2x", Point},
	{"AdvMame2x", "advmame2x", AdvMame2x},
	{"SuperEagle", "supereagle", SuperEagle},
	{"Super2xSaI", "super2xsai", Super2xSaI},
}

// Scalers lists the registry in index order.
func Scalers() []Info {
	out := make([]Info, len(registry))
	copy(out, registry[:])
	return out
}

// FindByName looks up a scaler by its configuration name, ignoring case.
func FindByName(name string) (ID, error) {
	for _, info := range registry {
		if strings.EqualFold(info.Name, name) {
			return info.ID, nil
		}
	}
	return None, fmt.Errorf("%w: name %q", ErrNotFound, name)
}

// FindByParam looks up a scaler by its command line parameter name.
func FindByParam(param string) (ID, error) {
	for _, info := range registry {
		if strings.EqualFold(info.Param, param) {
			return info.ID, nil
		}
	}
	return None, fmt.Errorf("%w: parameter %q", ErrNotFound, param)
}

// FindByIndex maps the keyboard shortcuts 0-9 onto registry rows.
func FindByIndex(i int) (ID, error) {
	if i < 0 || i > 9 || i >= len(registry) {
		return None, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	return registry[i].ID, nil
}

// ParamName returns the command line parameter name of id, or "" when
// id is not registered.
func ParamName(id ID) string {
	if info, ok := lookup(id); ok {
		return info.Param
	}
	return ""
}

func lookup(id ID) (Info, bool) {
	for _, info := range registry {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

func (id ID) String() string {
	if info, ok := lookup(id); ok {
		return info.Name
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// Factor is the scale factor id produces: 1 for None, otherwise 2.
func (id ID) Factor() int {
	if id == None {
		return 1
	}
	return 2
}
