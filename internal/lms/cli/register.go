package cli

import (
	"fmt"

	"github.com/futurexhq/futurex/internal/lms/domain"

	"github.com/spf13/cobra"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Name     string
	Email    string
	Password string
	Role     string
}

type registerRequest struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create a new account and sign in as it.

Self-registration always produces a student account; the --role flag is
accepted for API parity but does not change the outcome.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password (min 6 characters)")
	cmd.Flags().StringVar(&opts.Role, "role", string(domain.RoleStudent), "requested role (ignored, always student)")

	return cmd
}

func runRegister(opts *RegisterOptions, cmd *cobra.Command) error {
	req := registerRequest{Name: opts.Name, Email: opts.Email, Password: opts.Password}
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

	acc := a.Session.Register(ctx, opts.Name, opts.Email, opts.Password, role)

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(acc)
	}
	out.Textf("Welcome %s! You are signed in as %s (id %s).\n", acc.Name, acc.Role, acc.ID)
	return nil
}
