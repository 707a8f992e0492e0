// Package database connects to the MySQL database that can serve as the
// reference source in place of the country/region mapping CSV.
//
// Connect builds a GORM handle with explicit DSN timeouts and pings it.
// HasColumn lets callers confirm the configured code column exists before
// querying, so a misconfigured column name fails with a clear message
// instead of a SQL error.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	ok, err := database.HasColumn(ctx, db, "country_region_mapping", "iso")
package database
