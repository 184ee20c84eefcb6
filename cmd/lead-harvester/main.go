// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lead-harvester CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lead-harvester/internal/apollo"
	"github.com/pdiddy/lead-harvester/internal/secrets"
	"github.com/pdiddy/lead-harvester/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "lead-harvester/0.1"
	secretsDir       = ".secrets/"
)

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the CLI's diagnostic logger on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "lead-harvester",
})

// rootCmd is the base command for the lead-harvester CLI.
var rootCmd = &cobra.Command{
	Use:   "lead-harvester",
	Short: "Harvest chef leads from the Apollo people-search API",
	Long: `lead-harvester pages through Apollo's people search for chefs
(Chef, Head Chef, Executive Chef, Sous Chef, Pastry Chef), keeps name, email,
title, company, and LinkedIn URL for each person, and writes them to a CSV file.

The Apollo API key is read from --api-key, LEAD_HARVESTER_API_KEY, the config
file, APOLLO_API_KEY (also from .env), .secrets/apollo-api-key, or the OS
keyring (see "lead-harvester key set").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(log.DebugLevel)
		}

		s, err := secrets.Load(secretsDir)
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
			logger.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lead-harvester.yaml or ~/.config/lead-harvester/lead-harvester.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "Apollo API key")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))

	viper.SetDefault("base_url", apollo.DefaultBaseURL)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("harvest.pages", 5)
	viper.SetDefault("harvest.per_page", 100)
	viper.SetDefault("harvest.output", apollo.DefaultOutput)
	viper.SetDefault("harvest.format", "")
	viper.SetDefault("store.dsn", "")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("could not read .env", "err", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lead-harvester")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lead-harvester"))
		}
	}

	viper.SetEnvPrefix("LEAD_HARVESTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// loadConfig returns the merged configuration from flags, env, and file.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds an Apollo client from cfg, resolving the API key.
func newClient(cfg types.Config) (*apollo.Client, error) {
	key, source, err := secrets.ResolveAPIKey(cfg.APIKey, loadedSecrets)
	if err != nil {
		return nil, apollo.ErrNoAPIKey
	}
	logger.Debug("using API key", "source", source)

	acfg, err := apollo.NewConfig(key, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return apollo.NewClient(acfg, &http.Client{Timeout: timeout}, cfg.HTTP.UserAgent), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
