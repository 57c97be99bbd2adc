package cli

import (
	"fmt"

	"github.com/futurexhq/futurex/internal/lms/domain"

	"github.com/spf13/cobra"
)

// NewReviewsCommand creates the reviews command group.
func NewReviewsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Submit and moderate course reviews",
	}

	cmd.AddCommand(newReviewsSubmitCommand(rootOpts))
	cmd.AddCommand(newReviewsListCommand(rootOpts))
	cmd.AddCommand(newReviewsSetStatusCommand(rootOpts, "approve", domain.ReviewApproved))
	cmd.AddCommand(newReviewsSetStatusCommand(rootOpts, "reject", domain.ReviewRejected))
	cmd.AddCommand(newReviewsDeleteCommand(rootOpts))
	return cmd
}

// ReviewSubmitOptions holds flags for reviews submit.
type ReviewSubmitOptions struct {
	*RootOptions
	Rating  int
	Comment string
	Course  string
}

type reviewRequest struct {
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"required,min=10"`
	Course  string `validate:"required"`
}

func newReviewsSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReviewSubmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a course review (student)",
		Long: `Submit a course review as the signed-in student.

New reviews are held for moderation and only appear publicly once an admin
approves them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsSubmit(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&opts.Comment, "comment", "", "review text (min 10 characters)")
	cmd.Flags().StringVar(&opts.Course, "course", "", "course name the review is about")

	return cmd
}

func runReviewsSubmit(opts *ReviewSubmitOptions, cmd *cobra.Command) error {
	req := reviewRequest{Rating: opts.Rating, Comment: opts.Comment, Course: opts.Course}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	a, ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	author, err := requireRole(a, "/student")
	if err != nil {
		return err
	}

	review := a.Reviews.Add(ctx, author, opts.Rating, opts.Comment, opts.Course)

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(review)
	}
	out.Textf("Review %s submitted, awaiting moderation.\n", review.ID)
	return nil
}

// ReviewListOptions holds flags for reviews list.
type ReviewListOptions struct {
	*RootOptions
	All bool
}

func newReviewsListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReviewListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews (approved only, --all for moderation view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsList(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "include pending and rejected reviews (admin)")

	return cmd
}

func runReviewsList(opts *ReviewListOptions, cmd *cobra.Command) error {
	a, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var reviews []domain.Review
	if opts.All {
		if _, err := requireRole(a, "/admin"); err != nil {
			return err
		}
		reviews = a.Reviews.All()
	} else {
		reviews = a.Reviews.Approved()
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(reviews)
	}

	for _, r := range reviews {
		out.Textf("%-36s %-8s %d/5 %-20s %-30s %s\n",
			r.ID, r.Status, r.Rating, r.StudentName, r.CourseName, r.Comment)
	}
	return nil
}

func newReviewsSetStatusCommand(rootOpts *RootOptions, verb string, status domain.ReviewStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <review-id>",
		Short: verb + " a pending review (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := requireRole(a, "/admin"); err != nil {
				return err
			}

			if err := a.Reviews.SetStatus(ctx, args[0], status); err != nil {
				return fmt.Errorf("review %s: %w", args[0], err)
			}

			out := newFormatter(rootOpts, cmd.OutOrStdout())
			if out.IsJSON() {
				return out.JSON(map[string]string{"id": args[0], "status": string(status)})
			}
			out.Textf("Review %s is now %s.\n", args[0], status)
			return nil
		},
	}
}

func newReviewsDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <review-id>",
		Short: "Delete a review (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := requireRole(a, "/admin"); err != nil {
				return err
			}

			if err := a.Reviews.Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("review %s: %w", args[0], err)
			}

			out := newFormatter(rootOpts, cmd.OutOrStdout())
			if out.IsJSON() {
				return out.JSON(map[string]string{"id": args[0], "deleted": "true"})
			}
			out.Textf("Review %s deleted.\n", args[0])
			return nil
		},
	}
}
