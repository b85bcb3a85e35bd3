// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mealslice CLI. It resolves a
// school name within a Nutrislice district, fetches breakfast and lunch
// menus, and renders them as text, compact lines, or JSON.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mealslice CLI.
var rootCmd = &cobra.Command{
	Use:   "mealslice",
	Short: "Fetch school breakfast and lunch menus from Nutrislice",
	Long: `mealslice talks to a district's Nutrislice menu API. Give it a district
slug and a school name (partial matches work) and it prints the day's
breakfast and lunch menus.

Use "mealslice schools" to list a district's schools, and "mealslice menu"
to fetch menus for today, tomorrow, a specific date, or the whole week.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mealslice.yaml or ~/.config/mealslice/config.yaml)")
	rootCmd.PersistentFlags().StringP("district", "d", "", "Nutrislice district slug (found in your school's menu URL)")
	rootCmd.PersistentFlags().String("cache-dir", "", "directory for the on-disk payload cache (empty disables caching)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mealslice")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mealslice"))
		}
	}

	viper.SetEnvPrefix("MEALSLICE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// districtFromFlags returns the district slug from the flag, falling back to
// config/env.
func districtFromFlags(cmd *cobra.Command) (string, error) {
	district, _ := cmd.Flags().GetString("district")
	if district == "" {
		district = viper.GetString("district")
	}
	if district == "" {
		return "", fmt.Errorf("district is required: pass --district or set it in the config file")
	}
	return district, nil
}

// cacheDirFromFlags returns the cache directory from the flag, falling back
// to config/env. Empty means caching is disabled.
func cacheDirFromFlags(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("cache-dir")
	if dir == "" {
		dir = viper.GetString("cache_dir")
	}
	return dir
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
