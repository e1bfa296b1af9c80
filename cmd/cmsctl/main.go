// Command cmsctl manages regional site content from the terminal.
//
// Usage:
//
//	cmsctl login --username root
//	cmsctl list gallery --region US
//	cmsctl reorder slider --region US 7 3 5
//	cmsctl move logo --region AE --id 12 --to 0
//
// The API address and token are read from CMS_API_URL and CMS_TOKEN unless
// given as flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/regional-site-backend/internal/adminclient"
)

type globalOptions struct {
	apiURL string
	token  string
}

func (o *globalOptions) client() *adminclient.Client {
	return adminclient.New(o.apiURL, adminclient.WithToken(o.token))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "cmsctl",
		Short:         "Manage regional site content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("CMS_API_URL", "http://localhost:8080"), "API base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("CMS_TOKEN"), "bearer token")

	root.AddCommand(
		newLoginCmd(opts),
		newListCmd(opts),
		newReorderCmd(opts),
		newMoveCmd(opts),
		newMobileCmd(opts),
		newActivityCmd(opts),
	)
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
