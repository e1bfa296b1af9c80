package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/regional-site-backend/internal/adminclient"
	"github.com/heartmarshall/regional-site-backend/internal/adminclient/reorder"
)

func newLoginCmd(opts *globalOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a token and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("CMS_PASSWORD")
			}
			c := opts.client()
			if err := c.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Token())
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password (default $CMS_PASSWORD)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "list <slider|gallery|logo>",
		Short: "List a collection in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client().List(cmd.Context(), region, args[0])
			if err != nil {
				return err
			}
			printItems(cmd, items)
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region code")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

func newReorderCmd(opts *globalOptions) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "reorder <slider|gallery|logo> <id>...",
		Short: "Replace the order of a collection",
		Long:  "Replace the order of a collection. Every item of the collection must be listed exactly once.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}

			c := opts.client()
			w, err := openWidget(cmd, c, region, kind)
			if err != nil {
				return err
			}
			if n := len(w.Order()); n != len(ids) {
				return fmt.Errorf("%s in %s has %d items, got %d ids", kind, region, n, len(ids))
			}
			for i, id := range ids {
				if err := w.MoveTo(id, i); err != nil {
					return err
				}
			}
			return saveAndPrint(cmd, c, w, region, kind)
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region code")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

func newMoveCmd(opts *globalOptions) *cobra.Command {
	var (
		region string
		id     int64
		to     int
	)

	cmd := &cobra.Command{
		Use:   "move <slider|gallery|logo>",
		Short: "Move one item to a zero-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			c := opts.client()
			w, err := openWidget(cmd, c, region, kind)
			if err != nil {
				return err
			}
			if err := w.MoveTo(id, to); err != nil {
				return err
			}
			return saveAndPrint(cmd, c, w, region, kind)
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region code")
	cmd.Flags().Int64Var(&id, "id", 0, "item id")
	cmd.Flags().IntVar(&to, "to", 0, "target position")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newMobileCmd(opts *globalOptions) *cobra.Command {
	var (
		region  string
		visible bool
	)

	cmd := &cobra.Command{
		Use:   "mobile <id>",
		Short: "Show or hide a gallery item on mobile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			item, err := opts.client().SetMobileVisibility(cmd.Context(), region, "gallery", id, visible)
			if err != nil {
				return err
			}
			printItems(cmd, []adminclient.Item{*item})
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region code")
	cmd.Flags().BoolVar(&visible, "visible", true, "visible on mobile")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

func newActivityCmd(opts *globalOptions) *cobra.Command {
	var (
		action, entity string
		since          time.Duration
		limit, offset  int
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the audit log (super admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if action != "" {
				q.Set("action_type", action)
			}
			if entity != "" {
				q.Set("entity_type", entity)
			}
			if since > 0 {
				q.Set("start_date", time.Now().Add(-since).UTC().Format(time.RFC3339))
			}
			q.Set("limit", strconv.Itoa(limit))
			q.Set("offset", strconv.Itoa(offset))

			page, err := opts.client().Activity(cmd.Context(), q)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tACTION\tENTITY\tID\tIP")
			for _, e := range page.Logs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.CreatedAt.Local().Format(time.DateTime), e.ActionType, e.EntityType, e.EntityID, e.IPAddress)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if page.Pagination.HasMore {
				fmt.Fprintf(cmd.OutOrStdout(), "... %d of %d, use --offset %d for more\n",
					len(page.Logs), page.Pagination.Total, page.Pagination.Offset+len(page.Logs))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&action, "action", "", "filter by action type")
	cmd.Flags().StringVar(&entity, "entity", "", "filter by entity type")
	cmd.Flags().DurationVar(&since, "since", 0, "only entries newer than this")
	cmd.Flags().IntVar(&limit, "limit", 50, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	return cmd
}

// openWidget loads the collection's current order into a reorder session.
func openWidget(cmd *cobra.Command, c *adminclient.Client, region, kind string) (*reorder.Widget, error) {
	items, err := c.List(cmd.Context(), region, kind)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return reorder.New(ids, c.OrderSaver(region, kind)), nil
}

func saveAndPrint(cmd *cobra.Command, c *adminclient.Client, w *reorder.Widget, region, kind string) error {
	err := w.Save(cmd.Context())
	if errors.Is(err, reorder.ErrNothingToSave) {
		fmt.Fprintln(cmd.OutOrStdout(), "Order unchanged.")
		return w.Close(false)
	}
	if err != nil {
		_ = w.Close(true)
		return err
	}
	if err := w.Close(false); err != nil {
		return err
	}

	items, err := c.List(cmd.Context(), region, kind)
	if err != nil {
		return err
	}
	printItems(cmd, items)
	return nil
}

func printItems(cmd *cobra.Command, items []adminclient.Item) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tID\tFILE\tALT\tFLAGS")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", it.DisplayOrder, it.ID, it.Filename, it.AltText, flags(it))
	}
	_ = tw.Flush()
}

func flags(it adminclient.Item) string {
	switch {
	case it.IsActive != nil && !*it.IsActive:
		return "inactive"
	case it.MobileVisible != nil && *it.MobileVisible:
		return "mobile"
	}
	return ""
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, len(args))
	for i, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", a)
		}
		ids[i] = id
	}
	return ids, nil
}
