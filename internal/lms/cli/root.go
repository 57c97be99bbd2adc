package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/futurexhq/futurex/internal/lms/app"
	"github.com/futurexhq/futurex/internal/lms/authz"
	"github.com/futurexhq/futurex/internal/lms/domain"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every command.
type RootOptions struct {
	Format string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// validate checks the request structs commands build from their flags.
var validate = validator.New()

// NewRootCommand creates the root command for the futurex CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "futurex",
		Short: "FutureX LMS client",
		Long: `Command line client for the FutureX learning platform demo.

State lives in a local data file (FUTUREX_DATA_FILE, default futurex.db).
Each invocation restores the signed-in session before running, so login
survives across runs until you log out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewNavCommand(opts))
	cmd.AddCommand(NewCoursesCommand(opts))
	cmd.AddCommand(NewReviewsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openApp loads config and brings the application up for one command run.
// The caller owns the returned Application and must Close it.
func openApp(cmd *cobra.Command) (*app.Application, context.Context, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Context(cmd.Context()), nil
}

// requireRole ensures a signed-in account that is allowed into the given
// route group. Unauthenticated callers are pointed at login, mirroring the
// redirect the routing layer performs.
func requireRole(a *app.Application, pathPrefix string) (domain.Account, error) {
	acc, ok := a.Session.Current()
	if !ok {
		return domain.Account{}, errors.New("not signed in: run 'futurex login' first")
	}
	if !authz.IsAuthorized(acc.Role, pathPrefix) {
		return domain.Account{}, fmt.Errorf("%s is not available to role %s", pathPrefix, acc.Role)
	}
	return acc, nil
}
