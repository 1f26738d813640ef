package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
)

// contentCommand builds a command that prints one assembled view-model.
func contentCommand(use, short string, args cobra.PositionalArgs, route func([]string) (string, string),
	fetch func(cmd *cobra.Command, svc driving.ContentService, args []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := contentService()
			if err != nil {
				return err
			}
			view, err := fetch(cmd, svc, args)
			if err != nil {
				return err
			}
			path, kind := route(args)
			return writeView(cmd, path, kind, view)
		},
	}
}

func fixed(path, kind string) func([]string) (string, string) {
	return func([]string) (string, string) { return path, kind }
}

var homeCmd = contentCommand("home", "Print the home page", cobra.NoArgs,
	fixed(domain.PathRoot, domain.KindHome),
	func(cmd *cobra.Command, svc driving.ContentService, _ []string) (any, error) {
		return svc.HomePage(cmd.Context())
	})

var pageCmd = contentCommand("page <uid>", "Print a general page", cobra.ExactArgs(1),
	func(args []string) (string, string) {
		return domain.ResolvePath(domain.TypeGeneralPage, args[0]), domain.KindPage
	},
	func(cmd *cobra.Command, svc driving.ContentService, args []string) (any, error) {
		return svc.Page(cmd.Context(), args[0])
	})

var blogCmd = contentCommand("blog", "Print the blog index page", cobra.NoArgs,
	fixed(domain.PathArticles, domain.KindBlogIndex),
	func(cmd *cobra.Command, svc driving.ContentService, _ []string) (any, error) {
		return svc.BlogIndex(cmd.Context())
	})

var postCmd = contentCommand("post <uid>", "Print a blog post with its related posts", cobra.ExactArgs(1),
	func(args []string) (string, string) {
		return domain.ResolvePath(domain.TypeBlogPost, args[0]), domain.KindPost
	},
	func(cmd *cobra.Command, svc driving.ContentService, args []string) (any, error) {
		return svc.Post(cmd.Context(), args[0])
	})

var postsCmd = contentCommand("posts", "Print every blog post, newest first", cobra.NoArgs,
	fixed(domain.RoutePosts, domain.KindPosts),
	func(cmd *cobra.Command, svc driving.ContentService, _ []string) (any, error) {
		return svc.AllPosts(cmd.Context())
	})

var headerCmd = contentCommand("header", "Print the site header", cobra.NoArgs,
	fixed(domain.RouteHeader, domain.KindHeader),
	func(cmd *cobra.Command, svc driving.ContentService, _ []string) (any, error) {
		return svc.Header(cmd.Context())
	})

var footerCmd = contentCommand("footer", "Print the site footer", cobra.NoArgs,
	fixed(domain.RouteFooter, domain.KindFooter),
	func(cmd *cobra.Command, svc driving.ContentService, _ []string) (any, error) {
		return svc.Footer(cmd.Context())
	})

var eventsCmd = contentCommand("events", "Print upcoming events", cobra.NoArgs,
	fixed(domain.RouteEvents, domain.KindEvents),
	func(cmd *cobra.Command, svc driving.ContentService, _ []string) (any, error) {
		return svc.Events(cmd.Context())
	})

var idsCmd = &cobra.Command{
	Use:       "ids pages|posts",
	Short:     "Print the route parameters of every page or post",
	Long:      `Prints the {"params": {"id": ...}} entries a static site generator needs to pre-render the page or article routes.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"pages", "posts"},
	RunE:      runIDs,
}

func init() {
	rootCmd.AddCommand(homeCmd, pageCmd, blogCmd, postCmd, postsCmd, headerCmd, footerCmd, eventsCmd, idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	svc, err := contentService()
	if err != nil {
		return err
	}

	var ids []domain.PageID
	switch args[0] {
	case "pages":
		ids, err = svc.PageIDs(cmd.Context())
	case "posts":
		ids, err = svc.PostIDs(cmd.Context())
	default:
		return fmt.Errorf("%w: unknown collection %q", domain.ErrInvalidInput, args[0])
	}
	if err != nil {
		return err
	}
	return writeJSON(cmd, ids)
}
