package cli

import (
	"errors"
	"fmt"

	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/service"

	"github.com/spf13/cobra"
)

// ProfileOptions holds flags for the profile update command.
type ProfileOptions struct {
	*RootOptions
	Name      string
	Email     string
	Phone     string
	Bio       string
	AvatarURL string
}

// NewProfileCommand creates the profile command group.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the signed-in account's profile",
	}

	cmd.AddCommand(newProfileUpdateCommand(rootOpts))
	return cmd
}

func newProfileUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields of the signed-in account",
		Long: `Update profile fields of the signed-in account.

Only the flags you pass change; everything else keeps its value. The change
applies immediately to the running session and is written through to the
account directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileUpdate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&opts.Bio, "bio", "", "short biography")
	cmd.Flags().StringVar(&opts.AvatarURL, "avatar", "", "avatar URL")

	return cmd
}

func runProfileUpdate(opts *ProfileOptions, cmd *cobra.Command) error {
	patch := domain.AccountPatch{}
	changed := false
	if cmd.Flags().Changed("name") {
		patch.Name, changed = &opts.Name, true
	}
	if cmd.Flags().Changed("email") {
		patch.Email, changed = &opts.Email, true
	}
	if cmd.Flags().Changed("phone") {
		patch.Phone, changed = &opts.Phone, true
	}
	if cmd.Flags().Changed("bio") {
		patch.Bio, changed = &opts.Bio, true
	}
	if cmd.Flags().Changed("avatar") {
		patch.AvatarURL, changed = &opts.AvatarURL, true
	}
	if !changed {
		return errors.New("nothing to update: pass at least one of --name, --email, --phone, --bio, --avatar")
	}

	a, ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	err = a.Session.UpdateProfile(ctx, patch)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return errors.New("not signed in: run 'futurex login' first")
	case errors.Is(err, service.ErrUpdateFailed):
		// The in-memory change went through, durability did not.
		return fmt.Errorf("profile changed for this run, but saving it failed: the change may not survive a restart (%v)", err)
	case err != nil:
		return err
	}

	acc, _ := a.Session.Current()
	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(acc)
	}
	out.Textf("Profile updated.\n")
	return nil
}
