package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/navedit/internal/models"
)

// createPostCommand creates the post management commands
func (a *App) createPostCommand() *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Manage posts",
		Long:  "Create, list, retitle and delete posts, or edit a post title interactively.",
	}

	// post create
	var title, content string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new post",
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := a.postService.CreatePost(title, content)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(post)
			}
			if !a.quiet {
				fmt.Printf("Created post: %s\n", post.ID)
				fmt.Printf("Title: %s\n", post.Title)
			}
			return nil
		},
	}
	createCmd.Flags().StringVar(&title, "title", "", "Post title")
	createCmd.Flags().StringVar(&content, "content", "", "Post content")

	// post list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := a.postService.ListPosts()
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(posts)
			}
			return a.outputPostTable(posts)
		},
	}

	// post show
	showCmd := &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := a.postService.GetPost(args[0])
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(post)
			}
			return a.outputPostDetails(post)
		},
	}

	// post set-title
	setTitleCmd := &cobra.Command{
		Use:   "set-title <post-id> <title>",
		Short: "Set the title of a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newTitle := args[1]
			post, err := a.postService.UpdatePost(args[0], models.PostEdits{Title: &newTitle})
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(post)
			}
			if !a.quiet {
				fmt.Printf("Updated post: %s\n", post.ID)
			}
			return nil
		},
	}

	// post delete
	deleteCmd := &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.postService.DeletePost(args[0]); err != nil {
				return err
			}

			if !a.quiet {
				fmt.Printf("Deleted post: %s\n", args[0])
			}
			return nil
		},
	}

	// post edit
	editCmd := &cobra.Command{
		Use:   "edit [post-id]",
		Short: "Edit the title of a post interactively",
		Long:  "Edit the title of a post interactively. Without a post ID, pick the post from a list first.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runProgram(sessionPost, func(debugWriter io.Writer) *Model {
					return NewPostPickerModel(a, debugWriter)
				})
			}
			// fail before taking over the terminal
			if _, err := a.postService.GetPost(args[0]); err != nil {
				return err
			}
			return a.runProgram(sessionPost, func(debugWriter io.Writer) *Model {
				return NewPostModel(a, args[0], debugWriter)
			})
		},
	}

	postCmd.AddCommand(createCmd, listCmd, showCmd, setTitleCmd, deleteCmd, editCmd)
	return postCmd
}
