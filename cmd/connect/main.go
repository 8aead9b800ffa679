package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/connect/cmd/connect/commands"
	"github.com/fivetwenty-io/connect/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect media search CLI",
	Long: `A command-line interface for the Connect media search API.

Search editorial and creative images, look up image details, resolve
download locations and list collections and countries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.connect/config.yml)")
	flags.String("client-key", "", "application client key")
	flags.String("client-secret", "", "application client secret")
	flags.StringP("username", "u", "", "account username (password grant)")
	flags.StringP("password", "p", "", "account password (prompted when omitted with --username)")
	flags.String("refresh-token", "", "refresh token (refresh_token grant)")
	flags.String("connect-uri", constants.DefaultConnectBaseURI, "resource API base URI")
	flags.String("auth-uri", constants.DefaultAuthBaseURI, "token endpoint host")
	flags.String("output", constants.OutputTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "HTTP timeout")
	flags.String("cache", "none", "response cache (none, memory, nats)")
	flags.String("nats-url", "", "NATS server URL for --cache nats")
	flags.Duration("cache-ttl", constants.DefaultCacheTTL, "response cache TTL")

	for _, name := range []string{
		"config", "client-key", "client-secret", "username", "password", "refresh-token",
		"connect-uri", "auth-uri", "output", "verbose", "timeout", "cache", "nats-url", "cache-ttl",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
	rootCmd.AddCommand(commands.NewDownloadCommand())
	rootCmd.AddCommand(commands.NewCollectionsCommand())
	rootCmd.AddCommand(commands.NewCountriesCommand())
}

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".connect"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CONNECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
