package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/models"
)

// Output formatting helpers

func (a *App) outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (a *App) outputMenuTable(menus []*models.Menu) error {
	if len(menus) == 0 {
		fmt.Println("No menus found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG\tITEMS")

	for _, menu := range menus {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
			menu.ID,
			common.TruncateToWidth(menu.Name, 40),
			menu.Slug,
			len(menu.Items),
		)
	}

	return w.Flush()
}

func (a *App) outputMenuDetails(menu *models.Menu) error {
	fmt.Printf("ID: %d\n", menu.ID)
	fmt.Printf("Name: %s\n", menu.Name)
	fmt.Printf("Slug: %s\n", menu.Slug)
	fmt.Printf("\nItems:\n%s\n", strings.Repeat("-", 40))
	if len(menu.Items) == 0 {
		fmt.Println("(none)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, item := range menu.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.ClientID, item.Label, item.URL)
	}
	return w.Flush()
}

func (a *App) outputPostTable(posts []*models.Post) error {
	if len(posts) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tUPDATED")

	for _, post := range posts {
		title := post.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			post.ID,
			common.TruncateToWidth(title, 50),
			post.UpdatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	return w.Flush()
}

func (a *App) outputPostDetails(post *models.Post) error {
	fmt.Printf("ID: %s\n", post.ID)
	fmt.Printf("Title: %s\n", post.Title)
	fmt.Printf("Updated: %s\n", post.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("\nContent:\n%s\n", strings.Repeat("-", 40))
	fmt.Printf("%s\n", post.Content)
	return nil
}
