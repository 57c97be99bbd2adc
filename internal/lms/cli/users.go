package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group. Everything under it is
// admin territory.
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users (admin)",
	}

	cmd.AddCommand(newUsersListCommand(rootOpts))
	cmd.AddCommand(newUsersAddTrainerCommand(rootOpts))
	return cmd
}

func newUsersListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := requireRole(a, "/admin"); err != nil {
				return err
			}

			accounts := a.Directory.All()
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			if out.IsJSON() {
				return out.JSON(accounts)
			}

			for _, acc := range accounts {
				out.Textf("%-28s %-8s %-32s %s\n", acc.ID, acc.Role, acc.Email, acc.Name)
			}
			return nil
		},
	}
}

// TrainerOptions holds flags for users add-trainer.
type TrainerOptions struct {
	*RootOptions
	Name     string
	Email    string
	Password string
}

type trainerRequest struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func newUsersAddTrainerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrainerOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add-trainer",
		Short: "Create a trainer account",
		Long: `Create a trainer account.

Administrative action: it adds the trainer to the directory and leaves your
own session exactly as it was.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddTrainer(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "trainer display name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "trainer email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "trainer password (min 6 characters)")

	return cmd
}

func runAddTrainer(opts *TrainerOptions, cmd *cobra.Command) error {
	req := trainerRequest{Name: opts.Name, Email: opts.Email, Password: opts.Password}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	a, ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireRole(a, "/admin"); err != nil {
		return err
	}

	acc := a.Session.CreateTrainer(ctx, opts.Name, opts.Email, opts.Password)

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(acc)
	}
	out.Textf("Trainer %s <%s> created (id %s).\n", acc.Name, acc.Email, acc.ID)
	return nil
}
