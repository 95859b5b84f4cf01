// Package main is the entry point for the labsite CLI: the multi-tenant
// academic lab website backend and its publication import tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labsite/internal/secrets"
	"github.com/pdiddy/labsite/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the labsite CLI.
var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "Multi-tenant academic lab website backend",
	Long: `labsite serves the content API for a multi-tenant academic lab website
template. One deployed instance hosts many labs, isolated by a tenant
identifier resolved from request headers and cookies.

Subcommands: serve runs the HTTP content API; import loads publications into
the content store from BibTeX files or the Semantic Scholar API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./labsite.yaml or ~/.config/labsite/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labsite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "labsite"))
		}
	}

	viper.SetEnvPrefix("LABSITE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// storeConfig materializes the content store configuration from viper and
// loaded secrets. Business logic only ever sees the resulting struct.
func storeConfig() types.StoreConfig {
	return types.StoreConfig{
		ProjectID:  viper.GetString("store.project_id"),
		Dataset:    viper.GetString("store.dataset"),
		APIVersion: viper.GetString("store.api_version"),
		UseCDN:     viper.GetBool("store.use_cdn"),
		WriteToken: secrets.Value(loadedSecrets, secrets.KeySanityWriteToken, viper.GetString("store.write_token")),
	}
}

// tenantConfig materializes the tenant isolation configuration.
func tenantConfig() types.TenantConfig {
	return types.TenantConfig{
		MultiTenant:   viper.GetBool("tenant.multi_tenant"),
		DevTenantID:   viper.GetString("tenant.dev_tenant_id"),
		SecureCookies: viper.GetBool("tenant.secure_cookies"),
	}
}

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "labsite/0.1"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
