// Package catalogs holds the static, versioned regulatory data: the
// framework requirement catalogs, the cross-reference table, and the
// jurisdiction data table. Everything here is pure data built once at
// process start and shared read-only across requests.
package catalogs

import "kepler/internal/engine"

// Default assembles the full catalog set.
func Default() engine.CatalogSet {
	return engine.CatalogSet{
		EUSpaceAct:      EUSpaceAct(),
		NIS2:            NIS2(),
		National:        National(),
		CrossReferences: CrossReferences(),
		Jurisdictions:   Jurisdictions(),
	}
}

// Load builds and validates the catalog set, failing fast on malformed
// data so bad catalogs are caught at startup and in CI rather than in
// production requests.
func Load() (engine.CatalogSet, error) {
	set := Default()
	if err := set.Validate(); err != nil {
		return engine.CatalogSet{}, err
	}
	return set, nil
}
