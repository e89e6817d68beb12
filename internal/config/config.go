// Package config loads the bill-ledger YAML configuration: where the
// statement PDFs live, where CSVs go, which vendor layout each account
// folder maps to, and the description-to-category rules for the final
// combined output.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// AccountRule maps an account-folder name substring to a vendor layout.
type AccountRule struct {
	Match  string `mapstructure:"match"`
	Vendor string `mapstructure:"vendor"`
}

// DescriptionRule maps a description substring to a category.
type DescriptionRule struct {
	Match    string `mapstructure:"match"`
	Category string `mapstructure:"category"`
}

// Config is the full application configuration.
type Config struct {
	DataDir            string            `mapstructure:"data_dir"`
	OutputDir          string            `mapstructure:"output_dir"`
	AccountMapping     []AccountRule     `mapstructure:"account_mapping"`
	DescriptionMapping []DescriptionRule `mapstructure:"description_mapping"`
}

// Load reads configuration from the given file (or ./billledger.yaml when
// path is empty). Env vars prefixed BILLLEDGER_ override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("output_dir", "output")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("billledger")
		v.AddConfigPath(".")
		// A missing default config file is fine; defaults apply.
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("BILLLEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// VendorFor resolves the vendor layout for an account folder name: first
// account_mapping rule whose match is a substring of the name wins.
func (c Config) VendorFor(accountName string) (models.VendorID, error) {
	for _, rule := range c.AccountMapping {
		if rule.Match != "" && strings.Contains(accountName, rule.Match) {
			return models.VendorID(rule.Vendor), nil
		}
	}
	return "", fmt.Errorf("%w for account %q", models.ErrNoVendorProfile, accountName)
}
