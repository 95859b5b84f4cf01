package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/labsite/internal/content"
	"github.com/pdiddy/labsite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tenant-scoped content API server",
	Long: `Serve exposes the lab website content as JSON endpoints. Every request
resolves a tenant from its headers and cookies, and every content query is
scoped to that tenant. Without a resolved tenant in multi-tenant mode the
API returns empty results rather than any lab's data.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := content.NewClient(storeConfig(), &http.Client{Timeout: defaultTimeout})
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if v := viper.GetString("server.addr"); addr == ":8080" && v != "" {
		addr = v
	}

	tcfg := tenantConfig()
	srv := server.New(store, tcfg, logger)

	logger.Info("listening",
		zap.String("addr", addr),
		zap.Bool("multi_tenant", tcfg.MultiTenant))
	return http.ListenAndServe(addr, srv.Router())
}
