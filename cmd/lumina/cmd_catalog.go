package main

import (
	"fmt"
	"strconv"

	"lumina/cmd/lumina/ui"
	"lumina/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	catalogCategory string
	catalogQuery    string
)

// catalogCmd lists the catalogue
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalogue",
	Long: `Prints the catalogue as a table.

Examples:
  lumina catalog
  lumina catalog --category lighting
  lumina catalog --search oak`,
	Args: cobra.NoArgs,
	RunE: listCatalog,
}

func listCatalog(cmd *cobra.Command, args []string) error {
	category, ok := catalog.ParseCategory(catalogCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (valid: %v)", catalogCategory, catalog.Categories())
	}

	c, err := loadCatalog(commandContext(cmd))
	if err != nil {
		return err
	}

	products := catalog.Search(catalog.FilterByCategory(c.Products(), category), catalogQuery)
	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	table := ui.NewTable(fmt.Sprintf("%s · %s", cfg.Shop.Name, category), "ID", "Name", "Category", "Price").
		AlignRight(0).
		AlignRight(3)
	for _, p := range products {
		table.AddRow(strconv.Itoa(p.ID), p.Name, string(p.Category), ui.FormatPrice(p.Price))
	}
	fmt.Print(table.View(ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))))
	return nil
}
