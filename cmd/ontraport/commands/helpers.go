package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
	"github.com/fivetwenty-io/ontraport-client/pkg/opclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	defaultJSONIndent = "  "
)

// CreateClient builds an API client from the resolved configuration
// (flags, environment, config file).
func CreateClient() (ontraport.Client, error) {
	appID := viper.GetString("app-id")
	apiKey := viper.GetString("api-key")

	if appID == "" || apiKey == "" {
		return nil, fmt.Errorf("%w: run 'ontraport login' or set ONTRAPORT_APP_ID and ONTRAPORT_API_KEY", ontraport.ErrCredentialsMissing)
	}

	config := &ontraport.Config{
		AppID:       appID,
		APIKey:      apiKey,
		APIEndpoint: viper.GetString("api"),
		Debug:       viper.GetBool("verbose"),
	}

	return opclient.New(config)
}

// ParseFields converts key=value arguments to a field map.
func ParseFields(args []string) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", arg)
		}

		fields[key] = value
	}

	return fields, nil
}

// OutputResponse renders a Response in the configured output format.
func OutputResponse(resp *ontraport.Response) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(resp.Data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(resp.Data)
	default:
		return outputResponseTable(resp)
	}
}

func outputResponseTable(resp *ontraport.Response) error {
	if len(resp.Data) == 0 {
		fmt.Println("No data returned")

		return nil
	}

	keys := make([]string, 0, len(resp.Data))
	for key := range resp.Data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Value")

	for _, key := range keys {
		table.Append(key, formatValue(resp.Data[key]))
	}

	table.Render()

	return nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}
