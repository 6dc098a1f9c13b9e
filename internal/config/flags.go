package config

import (
	"flag"
	"os"

	"snackdash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the SQLite data file (default from Config)
//	-fee int    delivery fee in cents (default from Config)
//	-hash       store passwords bcrypt-hashed instead of plaintext
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-fee", "-hash"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "path of the SQLite data file")
	fs.Int64Var(&cfg.DeliveryFeeCents, "fee", cfg.DeliveryFeeCents, "delivery fee in cents")
	fs.BoolVar(&cfg.PasswordHashing, "hash", cfg.PasswordHashing, "store passwords bcrypt-hashed")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
