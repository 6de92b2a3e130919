package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-seat-layout/internal/config"
	"github.com/iliyamo/cinema-seat-layout/internal/logging"
	"github.com/iliyamo/cinema-seat-layout/internal/utils"
)

func tokenCmd() *cobra.Command {
	var (
		sub    uint64
		role   string
		ttl    int
		secret string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Long: `Mint a development access token for the layout API.

The secret defaults to JWT_SECRET and the lifetime to ACCESS_TOKEN_TTL_MIN,
both read from the environment or a .env file in the working directory.  Only the token is printed so it can be captured
in a shell variable.`,
		Example: `  TOKEN=$(layoutctl token --sub 1 --role OWNER)`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				config.LoadDotEnv()
				secret = os.Getenv("JWT_SECRET")
			}
			if !cmd.Flags().Changed("ttl") {
				if n, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MIN")); err == nil && n > 0 {
					ttl = n
				}
			}
			if secret == "" {
				return errors.New("no signing secret: set JWT_SECRET or pass --secret")
			}
			tok, err := utils.NewAccessToken(secret, sub, role, ttl)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("minted token", "sub", sub, "role", role, "expires", tok.Exp)
			fmt.Fprintln(cmd.OutOrStdout(), tok.Token)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&sub, "sub", 1, "user id (sub claim)")
	cmd.Flags().StringVar(&role, "role", "OWNER", "role claim")
	cmd.Flags().IntVar(&ttl, "ttl", 60, "lifetime in minutes (default: $ACCESS_TOKEN_TTL_MIN or 60)")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default: $JWT_SECRET)")
	return cmd
}
