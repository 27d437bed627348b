package catalogs

// CompiledData is the document written to the build directory.
type CompiledData struct {
	Catalog  Catalog      `json:"catalog" yaml:"catalog"`
	Services []RawService `json:"services" yaml:"services"`
}

// Compile assembles the compiled document. The slices are copied so the
// result shares no backing array with its arguments. Services are passed
// through as read.
func Compile(catalog Catalog, services []RawService) CompiledData {
	data := CompiledData{
		Catalog:  make(Catalog, len(catalog)),
		Services: make([]RawService, len(services)),
	}
	copy(data.Catalog, catalog)
	copy(data.Services, services)
	return data
}

// WithoutReferents returns the public variant of d: the same document with
// the referent of every catalog entry removed.
func (d CompiledData) WithoutReferents() CompiledData {
	catalog := make(Catalog, len(d.Catalog))
	for i, entry := range d.Catalog {
		catalog[i] = RemoveReferent(entry)
	}
	return CompiledData{
		Catalog:  catalog,
		Services: d.Services,
	}
}
