// Package theme holds the light/dark preference of a visitor and keeps the
// presentation markers that render it in sync.
package theme

// Preference selects the light or dark presentation.
type Preference bool

const (
	Light Preference = false
	Dark  Preference = true
)

func (p Preference) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// ParsePreference maps "dark" to Dark and anything else to Light.
func ParsePreference(s string) Preference {
	if s == "dark" {
		return Dark
	}
	return Light
}

// Marker is a presentation attribute that mirrors the preference.
type Marker interface {
	SetDark(dark bool)
}

// Controller owns the preference. Every change, whatever the caller,
// re-applies the preference to all attached markers before returning.
type Controller struct {
	pref    Preference
	markers []Marker
}

// NewController returns a controller with the given initial preference and
// the markers already synchronized to it.
func NewController(initial Preference, markers ...Marker) *Controller {
	c := &Controller{pref: initial}
	for _, m := range markers {
		c.Attach(m)
	}
	return c
}

// Preference returns the current preference.
func (c *Controller) Preference() Preference { return c.pref }

// IsDark reports whether the dark presentation is selected.
func (c *Controller) IsDark() bool { return c.pref == Dark }

// Attach registers m and syncs it immediately.
func (c *Controller) Attach(m Marker) {
	c.markers = append(c.markers, m)
	m.SetDark(c.IsDark())
}

// Toggle flips the preference and returns the new value.
func (c *Controller) Toggle() Preference {
	c.Set(!c.pref)
	return c.pref
}

// Set changes the preference to p.
func (c *Controller) Set(p Preference) {
	c.pref = p
	c.sync()
}

func (c *Controller) sync() {
	dark := c.IsDark()
	for _, m := range c.markers {
		m.SetDark(dark)
	}
}
