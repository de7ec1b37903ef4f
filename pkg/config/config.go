package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config holds everything the drivers need: catalogue locations, export
// target, server port, and logging knobs. The engine itself takes parsed
// catalogues and never reads configuration.
type Config struct {
	Env  string
	Port int

	Catalogue CatalogueConfig
	Export    ExportConfig
	Log       LogConfig
}

type CatalogueConfig struct {
	Format      string // csv or json
	CohortsFile string
	CoursesFile string
	RoomsFile   string
	CSVDelim    string
}

type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("port", 8080)
	v.SetDefault("catalogue.format", FormatCSV)
	v.SetDefault("catalogue.cohorts_file", "./res/cohorts.csv")
	v.SetDefault("catalogue.courses_file", "./res/courses.csv")
	v.SetDefault("catalogue.rooms_file", "./res/rooms.csv")
	v.SetDefault("catalogue.csv_delim", ";")
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	cfg := &Config{
		Env:  v.GetString("env"),
		Port: v.GetInt("port"),
		Catalogue: CatalogueConfig{
			Format:      v.GetString("catalogue.format"),
			CohortsFile: v.GetString("catalogue.cohorts_file"),
			CoursesFile: v.GetString("catalogue.courses_file"),
			RoomsFile:   v.GetString("catalogue.rooms_file"),
			CSVDelim:    v.GetString("catalogue.csv_delim"),
		},
		Export: ExportConfig{
			Dir: v.GetString("export.dir"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	return cfg, nil
}

// Delim returns the configured CSV delimiter as a rune, defaulting to ';'.
func (c CatalogueConfig) Delim() rune {
	if c.CSVDelim == "" {
		return ';'
	}
	return []rune(c.CSVDelim)[0]
}
