package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ontraport-client/internal/constants"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
	"github.com/fivetwenty-io/ontraport-client/pkg/opclient"
)

// NewLoginCommand creates the login command. It stores the credentials in the
// CLI config file after verifying them with a metadata fetch.
func NewLoginCommand() *cobra.Command {
	var (
		appID  string
		apiKey string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  "Verify and store the Ontraport application id and API key in the CLI configuration file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appID == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("App ID: ")

				line, _ := reader.ReadString('\n')
				appID = strings.TrimSpace(line)
			}

			if apiKey == "" {
				fmt.Print("API Key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(keyBytes)

				fmt.Println()
			}

			config := &ontraport.Config{
				AppID:       appID,
				APIKey:      apiKey,
				APIEndpoint: viper.GetString("api"),
				HTTPTimeout: constants.ShortHTTPTimeout,
			}

			client, err := opclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before persisting them.
			_, err = client.Meta().DescribeAll(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			err = persistCredentials(appID, apiKey, config.APIEndpoint)
			if err != nil {
				return err
			}

			fmt.Println("Credentials verified and saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&appID, "app-id", "", "Ontraport application id")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Ontraport API key")

	return cmd
}

func persistCredentials(appID, apiKey, endpoint string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".ontraport")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settings := map[string]string{
		"app-id":  appID,
		"api-key": apiKey,
	}
	if endpoint != "" {
		settings["api"] = endpoint
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
