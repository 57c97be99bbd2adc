package cli

import (
	"github.com/futurexhq/futurex/internal/lms/authz"

	"github.com/spf13/cobra"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := newFormatter(rootOpts, cmd.OutOrStdout())

			acc, ok := a.Session.Current()
			if !ok {
				if out.IsJSON() {
					return out.JSON(map[string]bool{"authenticated": false})
				}
				out.Textf("Not signed in.\n")
				return nil
			}

			if out.IsJSON() {
				return out.JSON(acc)
			}

			base, _ := authz.BasePath(acc.Role)
			out.Textf("%s <%s>\n", acc.Name, acc.Email)
			out.Textf("  id:   %s\n", acc.ID)
			out.Textf("  role: %s\n", acc.Role)
			if base != "" {
				out.Textf("  base: %s\n", base)
			}
			return nil
		},
	}
}
