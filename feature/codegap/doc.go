// Package codegap finds country/region codes used by trade records that are
// missing from a reference mapping.
//
// A check runs in two phases. LoadReference reads the reference table
// (header row skipped) and collects the trimmed code of one column into a
// CodeSet. Scan then reads the records table, parses every data row into a
// Record holding its importer, exporter and origin codes, and adds each code
// the reference set lacks to the Missing set of the returned Report. Blank
// codes get no special treatment.
//
// Column positions default to the CITES layout (ReferenceColumn,
// ImporterColumn, ExporterColumn, OriginColumn) and can be overridden by
// index or by header name through Layout.
//
// Rows too short for the layout abort the check with a *RowError wrapping
// ErrShortRow; there is no partial result.
//
// # Sources
//
// The reference set comes from a ReferenceSource: FileReference reads the
// mapping table from a dataset.Source, DBReference reads one column of a SQL
// table. CachedReference keeps a loaded set for a TTL and is used by the
// HTTP routes.
//
// # HTTP Endpoints
//
//   - GET /codes/reference : reference codes and their count.
//   - GET /codes/missing : full Report.
//   - POST /codes/refresh : drop the cached reference set.
package codegap
