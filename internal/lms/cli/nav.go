package cli

import (
	"errors"

	"github.com/futurexhq/futurex/internal/lms/authz"
	"github.com/futurexhq/futurex/internal/lms/domain"

	"github.com/spf13/cobra"
)

// NavOptions holds flags for the nav command.
type NavOptions struct {
	*RootOptions
	Role string
}

// NewNavCommand creates the nav command.
func NewNavCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NavOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Show the navigation for the signed-in role",
		Long: `Show the navigation entries for the signed-in role.

Pass --role to preview another role's navigation without touching the data
file or the session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNav(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Role, "role", "", "preview navigation for a role (student|trainer|admin)")

	return cmd
}

func runNav(opts *NavOptions, cmd *cobra.Command) error {
	var role domain.Role

	if opts.Role != "" {
		parsed, err := domain.ParseRole(opts.Role)
		if err != nil {
			return err
		}
		role = parsed
	} else {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		acc, ok := a.Session.Current()
		if !ok {
			return errors.New("not signed in: run 'futurex login' first, or pass --role")
		}
		role = acc.Role
	}

	entries := authz.NavigationFor(role)
	if entries == nil {
		return errors.New("no navigation for role " + role.String())
	}
	base, _ := authz.BasePath(role)

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(struct {
			Role    domain.Role      `json:"role"`
			Base    string           `json:"base"`
			Entries []authz.NavEntry `json:"entries"`
		}{role, base, entries})
	}

	out.Textf("%s navigation (base %s)\n", role, base)
	for _, e := range entries {
		out.Textf("  %-14s %s\n", e.Label, e.Path)
	}
	return nil
}
