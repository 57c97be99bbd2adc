package cli

import (
	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/service"

	"github.com/spf13/cobra"
)

// CoursesOptions holds flags for the courses list command.
type CoursesOptions struct {
	*RootOptions
	Category string
}

// NewCoursesCommand creates the courses command group. The catalog is
// static, so these commands never open the data file.
func NewCoursesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
	}

	cmd.AddCommand(newCoursesListCommand(rootOpts))
	return cmd
}

func newCoursesListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CoursesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoursesList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category")

	return cmd
}

func runCoursesList(opts *CoursesOptions, cmd *cobra.Command) error {
	catalog := &service.CatalogService{}

	var courses []domain.Course
	if opts.Category != "" {
		courses = catalog.ByCategory(opts.Category)
	} else {
		courses = catalog.All()
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.IsJSON() {
		return out.JSON(courses)
	}

	for _, c := range courses {
		out.Textf("%-4s %-30s %-14s $%-5d %-9s %s\n",
			c.ID, c.Title, c.Category, c.Price, c.Duration, c.Mode)
	}
	return nil
}
