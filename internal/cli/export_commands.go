package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/navedit/internal/models"
	"gopkg.in/yaml.v3"
)

// exportedItem drops the client ID, which only identifies items inside the editor
type exportedItem struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

type exportedMenu struct {
	Name  string         `json:"name" yaml:"name"`
	Slug  string         `json:"slug" yaml:"slug"`
	Items []exportedItem `json:"items" yaml:"items"`
}

// createExportCommand creates the menu export command
func (a *App) createExportCommand() *cobra.Command {
	var format string
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export [menu-id]",
		Short: "Export menus as YAML or JSON",
		Long:  "Writes every menu, or the one given, keyed by slug. Item client IDs are not exported.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menus, err := a.menusToExport(args)
			if err != nil {
				return err
			}

			out := io.Writer(os.Stdout)
			if outputFile != "" {
				file, err := os.Create(outputFile)
				if err != nil {
					return models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create %s", outputFile), err)
				}
				defer file.Close()
				out = file
			}

			if err := writeExport(out, format, menus); err != nil {
				return err
			}
			if outputFile != "" && !a.quiet {
				fmt.Printf("Exported %d menus to %s\n", len(menus), outputFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or json)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func (a *App) menusToExport(args []string) ([]*models.Menu, error) {
	if len(args) == 0 {
		return a.menuService.ListMenus()
	}
	id, err := parseMenuID(args[0])
	if err != nil {
		return nil, err
	}
	menu, err := a.menuService.GetMenu(id)
	if err != nil {
		return nil, err
	}
	return []*models.Menu{menu}, nil
}

func toExported(menus []*models.Menu) []exportedMenu {
	exported := make([]exportedMenu, 0, len(menus))
	for _, menu := range menus {
		items := make([]exportedItem, 0, len(menu.Items))
		for _, item := range menu.Items {
			items = append(items, exportedItem{Label: item.Label, URL: item.URL})
		}
		exported = append(exported, exportedMenu{Name: menu.Name, Slug: menu.Slug, Items: items})
	}
	return exported
}

// writeExport encodes menus in format
func writeExport(w io.Writer, format string, menus []*models.Menu) error {
	data := map[string][]exportedMenu{"menus": toExported(menus)}

	switch format {
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to encode YAML", err)
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to encode JSON", err)
		}
		return nil
	default:
		return models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}
