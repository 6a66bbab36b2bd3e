package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ontraport-client/internal/constants"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// NewObjectsCommand creates the objects command group.
func NewObjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objects",
		Aliases: []string{"object", "obj"},
		Short:   "Manage Ontraport objects",
		Long:    "Create, query, update, tag, and subscribe objects of any type (contact, company, custom objects).",
	}

	cmd.AddCommand(newObjectsGetCommand())
	cmd.AddCommand(newObjectsListCommand())
	cmd.AddCommand(newObjectsCreateCommand())
	cmd.AddCommand(newObjectsUpsertCommand())
	cmd.AddCommand(newObjectsUpdateCommand())
	cmd.AddCommand(newObjectsTagCommand())
	cmd.AddCommand(newObjectsUntagCommand())
	cmd.AddCommand(newObjectsTagByNameCommand())
	cmd.AddCommand(newObjectsSubscribeCommand())
	cmd.AddCommand(newObjectsUnsubscribeCommand())

	return cmd
}

func newObjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TYPE ID",
		Short: "Get a single object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Objects().Get(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

// ObjectsListOptions holds the options for listing objects.
type ObjectsListOptions struct {
	Condition string
	Search    string
	Start     int
	Range     int
	Sort      string
	SortDir   string
}

func newObjectsListCommand() *cobra.Command {
	var opts ObjectsListOptions

	cmd := &cobra.Command{
		Use:   "list TYPE",
		Short: "List objects of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &ontraport.QueryParams{
				Condition: opts.Condition,
				Search:    opts.Search,
				Start:     opts.Start,
				Range:     opts.Range,
				Sort:      opts.Sort,
				SortDir:   opts.SortDir,
			}

			resp, err := client.Objects().List(context.Background(), args[0], params)
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}

	cmd.Flags().StringVar(&opts.Condition, "condition", "", "condition expression")
	cmd.Flags().StringVar(&opts.Search, "search", "", "search string")
	cmd.Flags().IntVar(&opts.Start, "start", 0, "offset of the first record")
	cmd.Flags().IntVar(&opts.Range, "range", constants.StandardPageSize, "number of records to return")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "field to sort on")
	cmd.Flags().StringVar(&opts.SortDir, "sort-dir", "", "sort direction (asc, desc)")

	return cmd
}

func newObjectsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create TYPE FIELD=VALUE...",
		Short: "Create an object",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fields, err := ParseFields(args[1:])
			if err != nil {
				return err
			}

			resp, err := client.Objects().Create(context.Background(), args[0], fields)
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

func newObjectsUpsertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upsert TYPE FIELD=VALUE...",
		Short: "Create an object, or merge into an existing match",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fields, err := ParseFields(args[1:])
			if err != nil {
				return err
			}

			resp, err := client.Objects().SaveOrUpdate(context.Background(), args[0], fields)
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

func newObjectsUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update TYPE ID FIELD=VALUE...",
		Short: "Update an object",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fields, err := ParseFields(args[2:])
			if err != nil {
				return err
			}

			resp, err := client.Objects().Update(context.Background(), args[0], args[1], fields)
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

func newObjectsTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag TYPE IDS TAG_IDS",
		Short: "Add tags to objects",
		Long:  "Add tags to objects. IDS and TAG_IDS are comma-separated lists.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Objects().Tag(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

func newObjectsUntagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "untag TYPE IDS TAG_IDS",
		Short: "Remove tags from objects",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Objects().Untag(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

func newObjectsTagByNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag-by-name TYPE IDS TAG_NAMES",
		Short: "Add tags to objects by tag name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Objects().TagByName(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}

func newObjectsSubscribeCommand() *cobra.Command {
	var subType string

	cmd := &cobra.Command{
		Use:   "subscribe TYPE IDS LIST_IDS",
		Short: "Subscribe objects to campaigns or sequences",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateSubType(subType)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Objects().Subscribe(context.Background(), args[0], args[1], args[2], subType)
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}

	cmd.Flags().StringVar(&subType, "sub-type", constants.SubTypeCampaign, "subscription type (Campaign, Sequence)")

	return cmd
}

func validateSubType(subType string) error {
	switch subType {
	case "", constants.SubTypeCampaign, constants.SubTypeSequence:
		return nil
	default:
		return fmt.Errorf("invalid sub-type %q: expected %s or %s", subType, constants.SubTypeCampaign, constants.SubTypeSequence)
	}
}

func newObjectsUnsubscribeCommand() *cobra.Command {
	var subType string

	cmd := &cobra.Command{
		Use:   "unsubscribe TYPE IDS LIST_IDS",
		Short: "Unsubscribe objects from campaigns or sequences",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateSubType(subType)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Objects().Unsubscribe(context.Background(), args[0], args[1], args[2], subType)
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}

	cmd.Flags().StringVar(&subType, "sub-type", constants.SubTypeCampaign, "subscription type (Campaign, Sequence)")

	return cmd
}
