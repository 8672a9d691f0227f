package palette

import "sync"

// Color is a shared flyweight. Fields are unexported so no caller can
// mutate an instance other callers hold.
type Color struct {
	name string
	hex  string
}

func (c *Color) Name() string { return c.name }
func (c *Color) Hex() string  { return c.hex }

// fallbackHex is used for names outside the known table.
const fallbackHex = "#808080"

var namedHex = map[string]string{
	"red":    "#FF0000",
	"green":  "#00FF00",
	"blue":   "#0000FF",
	"black":  "#000000",
	"white":  "#FFFFFF",
	"yellow": "#FFFF00",
	"orange": "#FFA500",
	"purple": "#800080",
}

// Palette caches one Color per distinct name and hands the same instance
// to every caller asking for that name. Names are case-sensitive keys.
// Entries live for the palette lifetime; there is no eviction.
type Palette struct {
	mu     sync.RWMutex
	colors map[string]*Color
}

func New() *Palette {
	return &Palette{colors: make(map[string]*Color)}
}

// GetOrCreate returns the shared Color for name, creating it on first
// request. The read-check-then-write sequence is one critical section, so
// concurrent first requests for the same name still converge on a single
// instance.
func (p *Palette) GetOrCreate(name string) *Color {
	p.mu.RLock()
	c, ok := p.colors[name]
	p.mu.RUnlock()
	if ok {
		return c
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.colors[name]; ok {
		return c
	}

	hex, ok := namedHex[name]
	if !ok {
		hex = fallbackHex
	}

	c = &Color{name: name, hex: hex}
	p.colors[name] = c
	return c
}

// Len reports the number of distinct colors created so far.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}
