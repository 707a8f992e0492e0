// Package config loads codegap settings with Viper.
//
// Values come from, in order of precedence, environment variables, a .env
// file (loaded with godotenv), and the `default` struct tags of each section.
// Keys are the `mapstructure` paths; environment names replace dots with
// underscores and are upper case.
//
// # Sections
//
//   - codegap: table paths, column layout, reference source, cache TTL
//   - data: dataset source (local or bucket)
//   - storage: S3/MinIO credentials and bucket
//   - database: MySQL connection for the SQL reference source
//   - log: level and format
//   - server: HTTP listen address and API key
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.CodeGap.RecordsPath)
package config
