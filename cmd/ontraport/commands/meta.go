package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// NewMetaCommand creates the meta command group.
func NewMetaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Inspect object-schema metadata",
	}

	cmd.AddCommand(newMetaListCommand())
	cmd.AddCommand(newMetaDescribeCommand())

	return cmd
}

func newMetaListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all object types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			all, err := client.Meta().DescribeAll(context.Background())
			if err != nil {
				return err
			}

			return outputMetaList(all)
		},
	}
}

func newMetaDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe TYPE",
		Short: "Show metadata for one object type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			meta, err := client.Meta().Describe(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputMeta(meta)
		},
	}
}

func outputMetaList(all map[string]ontraport.ObjectMeta) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(all)
	case OutputFormatYAML:
		return yaml.NewEncoder(os.Stdout).Encode(all)
	default:
		ids := make([]string, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}

		// Numeric sort on the id keys.
		sort.Slice(ids, func(i, j int) bool {
			a, _ := strconv.Atoi(ids[i])
			b, _ := strconv.Atoi(ids[j])

			return a < b
		})

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Fields")

		for _, id := range ids {
			meta := all[id]
			table.Append(id, meta.Name, strconv.Itoa(len(meta.Fields)))
		}

		table.Render()

		return nil
	}
}

func outputMeta(meta *ontraport.ObjectMeta) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(meta)
	case OutputFormatYAML:
		return yaml.NewEncoder(os.Stdout).Encode(meta)
	default:
		fmt.Printf("%s (id %s)\n\n", meta.Name, meta.SchemaObjectID)

		names := make([]string, 0, len(meta.Fields))
		for name := range meta.Fields {
			names = append(names, name)
		}

		sort.Strings(names)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Alias", "Type")

		for _, name := range names {
			field := meta.Fields[name]
			table.Append(name, field.Alias, field.Type)
		}

		table.Render()

		return nil
	}
}
