package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/navedit/internal/models"
)

func parseMenuID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("invalid menu ID: %s", arg))
	}
	return id, nil
}

// createMenuCommand creates the menu management commands
func (a *App) createMenuCommand() *cobra.Command {
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage navigation menus",
		Long:  "Create, list, rename, export and delete navigation menus and their items.",
	}

	// menu create
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := a.menuService.CreateMenu(contextOrBackground(cmd), args[0])
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(menu)
			}
			if !a.quiet {
				fmt.Printf("Created menu: %d\n", menu.ID)
				fmt.Printf("Name: %s\n", menu.Name)
				fmt.Printf("Slug: %s\n", menu.Slug)
			}
			return nil
		},
	}

	// menu list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all menus",
		RunE: func(cmd *cobra.Command, args []string) error {
			menus, err := a.menuService.ListMenus()
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(menus)
			}
			return a.outputMenuTable(menus)
		},
	}

	// menu show
	showCmd := &cobra.Command{
		Use:   "show <menu-id>",
		Short: "Show a menu and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMenuID(args[0])
			if err != nil {
				return err
			}
			menu, err := a.menuService.GetMenu(id)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(menu)
			}
			return a.outputMenuDetails(menu)
		},
	}

	// menu rename
	renameCmd := &cobra.Command{
		Use:   "rename <menu-id> <name>",
		Short: "Rename a menu",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMenuID(args[0])
			if err != nil {
				return err
			}
			menu, err := a.menuService.RenameMenu(id, args[1])
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(menu)
			}
			if !a.quiet {
				fmt.Printf("Renamed menu %d to %s\n", menu.ID, menu.Name)
			}
			return nil
		},
	}

	// menu delete
	deleteCmd := &cobra.Command{
		Use:   "delete <menu-id>",
		Short: "Delete a menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMenuID(args[0])
			if err != nil {
				return err
			}
			if err := a.menuService.DeleteMenu(id); err != nil {
				return err
			}

			if !a.quiet {
				fmt.Printf("Deleted menu: %d\n", id)
			}
			return nil
		},
	}

	menuCmd.AddCommand(createCmd, listCmd, showCmd, renameCmd, deleteCmd)
	menuCmd.AddCommand(a.createExportCommand(), a.createMenuItemCommand())
	return menuCmd
}

// createMenuItemCommand creates the menu item commands
func (a *App) createMenuItemCommand() *cobra.Command {
	itemCmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the items of a menu",
	}

	var label, url string
	addCmd := &cobra.Command{
		Use:   "add <menu-id>",
		Short: "Append an item to a menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMenuID(args[0])
			if err != nil {
				return err
			}
			item, err := a.menuService.AddMenuItem(id, label, url)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.outputJSON(item)
			}
			if !a.quiet {
				fmt.Printf("Added item %s to menu %d\n", item.ClientID, id)
			}
			return nil
		},
	}
	addCmd.Flags().StringVar(&label, "label", "", "Item label (required)")
	addCmd.Flags().StringVar(&url, "url", "", "Item URL (required)")
	_ = addCmd.MarkFlagRequired("label")
	_ = addCmd.MarkFlagRequired("url")

	removeCmd := &cobra.Command{
		Use:   "remove <menu-id> <item-id>",
		Short: "Remove an item from a menu",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMenuID(args[0])
			if err != nil {
				return err
			}
			if err := a.menuService.RemoveMenuItem(id, args[1]); err != nil {
				return err
			}

			if !a.quiet {
				fmt.Printf("Removed item %s from menu %d\n", args[1], id)
			}
			return nil
		},
	}

	itemCmd.AddCommand(addCmd, removeCmd)
	return itemCmd
}

// contextOrBackground keeps commands usable when executed without a context
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
