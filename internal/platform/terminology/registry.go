package terminology

// registry is the merged concept table. Assembled once at init from the
// per-area value set files; read-only afterwards.
var registry = make(map[Concept]map[System][]string)

func init() {
	for _, group := range []map[Concept]map[System][]string{
		screeningValueSets,
		exclusionValueSets,
		encounterValueSets,
		diabetesValueSets,
	} {
		for concept, systems := range group {
			if _, dup := registry[concept]; dup {
				panic("terminology: duplicate concept " + string(concept))
			}
			registry[concept] = systems
		}
	}
}
