package cli

import (
	"errors"
	"fmt"

	"github.com/futurexhq/futurex/internal/lms/authz"
	"github.com/futurexhq/futurex/internal/lms/domain"

	"github.com/spf13/cobra"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Email    string
	Password string
	Role     string
}

type loginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"required"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the platform",
		Long: `Sign in with email, password and role.

The role is part of the lookup: the same email may exist once per role, and
signing in under the wrong role fails the same way a wrong password does.

Example:
  futurex login --email alex@student.futurex.com --password password --role student`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password")
	cmd.Flags().StringVar(&opts.Role, "role", string(domain.RoleStudent), "account role (student|trainer|admin)")

	return cmd
}

func runLogin(opts *LoginOptions, cmd *cobra.Command) error {
	req := loginRequest{Email: opts.Email, Password: opts.Password, Role: opts.Role}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	role, err := domain.ParseRole(opts.Role)
	if err != nil {
		return err
	}

	a, ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.Session.Login(ctx, opts.Email, opts.Password, role) {
		// One generic message for every failure mode, on purpose.
		return errors.New("invalid email or password")
	}

	acc, _ := a.Session.Current()
	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(acc)
	}

	base, _ := authz.BasePath(acc.Role)
	out.Textf("Signed in as %s <%s> (%s)\n", acc.Name, acc.Email, acc.Role)
	out.Textf("Your dashboard lives under %s\n", base)
	return nil
}
