package dataset

// Config selects where the CSV tables are read from.
type Config struct {
	// Source is "local" (filesystem) or "bucket" (storage.Bucket).
	Source string `mapstructure:"source" default:"local"`
	// Root is prepended to relative paths by the local source.
	Root string `mapstructure:"root" default:""`
}
