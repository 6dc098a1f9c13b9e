package config

// Config holds runtime settings for the snackdash storefront CLI.
//
// Fields:
//   - DataFile: path (or DSN) of the SQLite database backing the record store.
//   - DeliveryFeeCents: flat delivery fee added to every order, in cents.
//   - PasswordHashing: when true, account passwords are stored bcrypt-hashed
//     instead of plaintext.
type Config struct {
	DataFile         string
	DeliveryFeeCents int64
	PasswordHashing  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = "snackdash.db"
	c.DeliveryFeeCents = 299
	c.PasswordHashing = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
