package codegap

import "time"

// Reference source kinds.
const (
	ReferenceFile     = "file"
	ReferenceDatabase = "database"
)

// Config holds the settings of a gap check.
type Config struct {
	// ReferencePath names the country/region mapping table.
	ReferencePath string `mapstructure:"reference_path" default:"../data/country_region_mapping.csv"`
	// RecordsPath names the trade records table.
	RecordsPath string `mapstructure:"records_path" default:"../data/CITIES_data.csv"`
	// Reference selects where reference codes come from: "file" or "database".
	Reference string `mapstructure:"reference" default:"file"`
	// ReferenceTable is the SQL table read when Reference is "database".
	ReferenceTable string `mapstructure:"reference_table" default:"country_region_mapping"`
	// ReferenceColumn is the SQL column holding the codes.
	ReferenceColumn string `mapstructure:"reference_column" default:"iso"`
	// CacheTTLSeconds is how long `serve` reuses a loaded reference set.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// Columns locates the code fields in both tables.
	Columns Layout `mapstructure:"columns"`
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
