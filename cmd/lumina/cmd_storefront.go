package main

import (
	"context"
	"fmt"

	"lumina/cmd/lumina/shop"
	"lumina/cmd/lumina/ui"
	"lumina/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runStorefront starts the interactive storefront
func runStorefront(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	model := shop.New(ctx, c, newGateway(ctx, c), shop.Options{
		ShopName: cfg.Shop.Name,
		Tagline:  cfg.Shop.Tagline,
		Theme:    ui.ThemeByName(cfg.UI.Theme),
		Logger:   logging.Get(logging.CategoryUI),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("storefront exited: %w", err)
	}
	return nil
}
