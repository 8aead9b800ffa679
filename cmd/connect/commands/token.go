package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/connect/internal/auth"
)

const maskedToken = "***"

// TokenInfo is the printable view of the current token.
type TokenInfo struct {
	Grant           string     `json:"grant"                yaml:"grant"`
	AccessToken     string     `json:"access_token"         yaml:"access_token"`
	TokenType       string     `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	HasRefreshToken bool       `json:"has_refresh_token"    yaml:"has_refresh_token"`
}

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	var (
		refresh bool
		show    bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Acquire an access token",
		Long:  "Acquire an access token with the configured credentials and show its status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			manager := c.TokenManager()

			if refresh {
				err = manager.RefreshToken(cmd.Context())
			} else {
				_, err = manager.GetToken(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("acquiring token: %w", err)
			}

			info := tokenInfo(manager.GrantType(), manager.Token(), show)

			expires := NotAvailable
			if info.ExpiresAt != nil {
				expires = info.ExpiresAt.Format(time.RFC3339)
			}

			return render(cmd.OutOrStdout(), info, []string{"Property", "Value"}, [][]string{
				{"Grant", info.Grant},
				{"Access Token", info.AccessToken},
				{"Token Type", orNA(info.TokenType)},
				{"Expires At", expires},
				{"Refresh Token", fmt.Sprint(info.HasRefreshToken)},
			})
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "acquire a new token even if the cached one is valid")
	cmd.Flags().BoolVar(&show, "show", false, "print the access token instead of masking it")

	return cmd
}

func tokenInfo(grant string, token *auth.Token, show bool) TokenInfo {
	info := TokenInfo{Grant: grant}
	if token == nil {
		return info
	}

	info.AccessToken = maskedToken
	if show {
		info.AccessToken = token.AccessToken
	}

	info.TokenType = token.TokenType
	info.HasRefreshToken = token.RefreshToken != ""

	if !token.ExpiresAt.IsZero() {
		expiresAt := token.ExpiresAt
		info.ExpiresAt = &expiresAt
	}

	return info
}
