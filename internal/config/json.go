package config

import (
	"encoding/json"
	"os"

	"snackdash/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero values so a config file can override only
// some settings.
type JsonConfig struct {
	DataFile         *string `json:"data_file"`
	DeliveryFeeCents *int64  `json:"delivery_fee_cents"`
	PasswordHashing  *bool   `json:"password_hashing"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataFile != nil {
		cfg.DataFile = *jc.DataFile
	}
	if jc.DeliveryFeeCents != nil {
		cfg.DeliveryFeeCents = *jc.DeliveryFeeCents
	}
	if jc.PasswordHashing != nil {
		cfg.PasswordHashing = *jc.PasswordHashing
	}
}
