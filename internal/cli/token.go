package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scamslayer-service/internal/auth"
	"scamslayer-service/internal/config"
)

// NewTokenCmd issues a signed player token, handy for local testing against
// the authenticated endpoints.
func NewTokenCmd(configPath *string) *cobra.Command {
	var uid, name string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed player token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			ttl := config.TTLDuration(cfg.Auth.TTL, 24*time.Hour)
			token, err := auth.Sign(cfg.AuthSecret(), uid, name, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "dev-user", "player uid to embed")
	cmd.Flags().StringVar(&name, "name", "Dev Player", "display name to embed")
	return cmd
}
