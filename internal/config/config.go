package config

type Config struct {
	AppsDir    string `mapstructure:"appsDir"`
	OutputFile string `mapstructure:"outputFile"`
	Marker     string `mapstructure:"marker"`
	SiteTitle  string `mapstructure:"siteTitle"`
	BaseURL    string `mapstructure:"baseURL"`
}
