package assistant

import (
	"fmt"
	"strings"

	"lumina/internal/catalog"
)

const personaPreamble = `You are a helpful and sophisticated personal shopper for 'Lumina Boutique'.
Use the following product list to help the user. Keep your answers concise, elegant, and helpful.
Recommend specific products if they match the user's needs.

PRODUCTS AVAILABLE:
`

// RenderProductLine formats one product as "<name> ($<price>) in <category>: <description>".
func RenderProductLine(p catalog.Product) string {
	return fmt.Sprintf("%s ($%d) in %s: %s", p.Name, p.Price, p.Category, p.Description)
}

// RenderProductContext renders every product on its own line, in catalogue order.
func RenderProductContext(products []catalog.Product) string {
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = RenderProductLine(p)
	}
	return strings.Join(lines, "\n")
}

// BuildSystemInstruction wraps the product context with the shopper persona.
func BuildSystemInstruction(products []catalog.Product) string {
	return personaPreamble + RenderProductContext(products)
}
