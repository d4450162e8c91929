package keyvalues

// Prop is a single key/value pair of an entity property bag.
type Prop struct {
	Key   string
	Value string
}

// Entity is one entity record extracted from a map file: its classname and
// the bag's key/value pairs in file order, the classname pair included.
// The reader deduplicates keys within one bag (first occurrence wins), so
// a key appears at most once.
type Entity struct {
	Classname string
	Props     []Prop
}

// Get returns the value of the property with the given key and whether the
// key is present.
func (e Entity) Get(key string) (string, bool) {
	for _, p := range e.Props {
		if p.Key == key {
			return p.Value, true
		}
	}

	return "", false
}

// Has reports whether the property bag contains the given key.
func (e Entity) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}
