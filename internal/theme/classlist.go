package theme

import (
	"sort"
	"strings"
)

// DarkClass is the root class that switches the stylesheet to dark tokens.
const DarkClass = "dark"

// ClassList is the class set of the document root element.
type ClassList struct {
	classes map[string]struct{}
}

// NewClassList returns a class list holding the given classes.
func NewClassList(classes ...string) *ClassList {
	cl := &ClassList{classes: make(map[string]struct{}, len(classes))}
	for _, c := range classes {
		cl.Add(c)
	}
	return cl
}

func (cl *ClassList) Add(class string) {
	if class == "" {
		return
	}
	if cl.classes == nil {
		cl.classes = make(map[string]struct{})
	}
	cl.classes[class] = struct{}{}
}

func (cl *ClassList) Remove(class string) {
	delete(cl.classes, class)
}

func (cl *ClassList) Contains(class string) bool {
	_, ok := cl.classes[class]
	return ok
}

// SetDark implements Marker.
func (cl *ClassList) SetDark(dark bool) {
	if dark {
		cl.Add(DarkClass)
		return
	}
	cl.Remove(DarkClass)
}

// String renders the classes sorted and space separated, ready for a class
// attribute.
func (cl *ClassList) String() string {
	out := make([]string, 0, len(cl.classes))
	for c := range cl.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}
