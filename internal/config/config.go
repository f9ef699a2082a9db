package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	FreightViewClientID     string        `koanf:"freightview_client_id"`
	FreightViewClientSecret string        `koanf:"freightview_client_secret"`
	SSClientID              string        `koanf:"ss_client_id"`
	SSClientSecret          string        `koanf:"ss_client_secret"`
	AirtableAPIKey          string        `koanf:"airtable_api_key"`
	AirtableBaseID          string        `koanf:"airtable_base_id"`
	AirtableTableName       string        `koanf:"airtable_table_name"`
	Timeout                 time.Duration `koanf:"timeout"`
	CacheTTL                time.Duration `koanf:"cache_ttl"`
	LogFile                 string        `koanf:"log_file"`
	Debug                   bool          `koanf:"debug"`
}

func New() (Config, error) {
	cfg := Config{
		Timeout:  20 * time.Second,
		CacheTTL: 15 * time.Minute,
		LogFile:  "./shipdash.log",
		Debug:    false,
	}

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// Validate reports missing credentials before any network call is made.
// FreightView and ShipStation credentials are required; the Airtable trio
// is optional but must be set together.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.FreightViewClientID) == "" {
		missing = append(missing, "FREIGHTVIEW_CLIENT_ID")
	}
	if strings.TrimSpace(c.FreightViewClientSecret) == "" {
		missing = append(missing, "FREIGHTVIEW_CLIENT_SECRET")
	}
	if strings.TrimSpace(c.SSClientID) == "" {
		missing = append(missing, "SS_CLIENT_ID")
	}
	if strings.TrimSpace(c.SSClientSecret) == "" {
		missing = append(missing, "SS_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	set := 0
	for _, v := range []string{c.AirtableAPIKey, c.AirtableBaseID, c.AirtableTableName} {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return errors.New("airtable configuration requires AIRTABLE_API_KEY, AIRTABLE_BASE_ID and AIRTABLE_TABLE_NAME together")
	}

	return nil
}
