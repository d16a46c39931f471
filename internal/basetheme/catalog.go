package basetheme

// Descriptor is one entry of the base theme catalog. Provider is a registry
// key; empty means the theme has no extra settings.
type Descriptor struct {
	ID       string
	Name     string
	Provider string
}

// None is the identifier of the "No Base Theme" entry.
const None = ""

// Provider keys.
const (
	ProviderAurora = "aurora"
)

var catalog = [...]Descriptor{
	{ID: None, Name: "No Base Theme"},
	{ID: "zen", Name: "Zen"},
	{ID: "aurora", Name: "Aurora", Provider: ProviderAurora},
	{ID: "omega", Name: "Omega 4.x", Provider: ProviderAurora},
	{ID: "mothership", Name: "Mothership"},
}

// Catalog returns the base theme descriptors in display order. The returned
// slice is a copy.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup returns the descriptor with the given identifier.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// IDs returns every catalog identifier, including None.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, d := range catalog {
		ids[i] = d.ID
	}
	return ids
}
