// Package catalogs holds the row types of the sill data tables and builds
// the compiled catalog from them.
//
// The four input tables (software, referent, software-referent links and
// services) are joined into a Catalog: one CatalogEntry per software row, in
// table order, carrying the referent resolved through the link table. The
// public variant of the compiled document is the same catalog with every
// referent removed.
//
//	catalog, err := catalogs.Build(tables.Software, tables.Referents, tables.SoftwareReferents, logger)
//	if err != nil {
//	    return err
//	}
//	data := catalogs.Compile(catalog, tables.RawServices)
//	public := data.WithoutReferents()
package catalogs
