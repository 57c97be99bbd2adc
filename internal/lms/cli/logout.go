package cli

import (
	"github.com/spf13/cobra"
)

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Session.Logout(ctx)

			out := newFormatter(rootOpts, cmd.OutOrStdout())
			if out.IsJSON() {
				return out.JSON(map[string]bool{"authenticated": false})
			}
			out.Textf("Signed out.\n")
			return nil
		},
	}
}
