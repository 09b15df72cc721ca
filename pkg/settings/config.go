package settings

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// consts
const (
	Name = "Transbuddy"
)

// Config ...
type Config struct {
	Name    string `ignored:"true"`
	Version string `ignored:"true"`

	HTTPListen string `envconfig:"HTTP_LISTEN" default:":5001"`
	APIRate    string `envconfig:"api_rate" default:"30-M"`

	HistoryFile string `envconfig:"history_file" default:"translation_history.json"`
	PresetFile  string `envconfig:"preset_file"`

	ProbeHost    string        `envconfig:"probe_host" default:"translate.google.com"`
	ProbePort    int           `envconfig:"probe_port" default:"443"`
	ProbeTimeout time.Duration `envconfig:"probe_timeout" default:"5s"`

	Provider       string `envconfig:"provider" default:"google"`
	GoogleEndpoint string `envconfig:"google_endpoint" default:"https://translate.google.com/m"`
	OpenAIAPIKey   string `envconfig:"openAi_Api_Key"`
	OpenAIModel    string `envconfig:"openAi_Model" default:"gpt-4o-mini"`
}

var (
	// Current holds the loaded configuration
	Current = new(Config)
)

func init() {
	if err := envconfig.Process(Name, Current); err != nil {
		log.Printf("envconfig process fail: %s", err)
	}

	Current.Name = Name
	Current.Version = version
}

// Check reprocesses the environment into a scratch config and reports
// the first binding failure.
func Check() error {
	return envconfig.Process(Name, new(Config))
}

// Usage prints the environment variables help
func Usage() error {
	log.Printf("ver: %s", Current.Version)
	return envconfig.Usage(Current.Name, Current)
}
