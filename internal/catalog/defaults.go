package catalog

// Default returns the built-in Lumina catalogue.
func Default() *Catalog {
	return MustNew(defaultProducts)
}

var defaultProducts = []Product{
	{
		ID:          1,
		Name:        "Travertine Coffee Table",
		Price:       850,
		Category:    Furniture,
		Description: "A solid travertine table with natural textures and a minimalist geometric profile.",
		Image:       "https://picsum.photos/seed/table1/800/800",
	},
	{
		ID:          2,
		Name:        "Sculptural Ceramic Vase",
		Price:       120,
		Category:    Decor,
		Description: "Hand-thrown ceramic vase with a matte sand finish. Each piece is unique.",
		Image:       "https://picsum.photos/seed/vase2/800/800",
	},
	{
		ID:          3,
		Name:        "Pendant Sphere Light",
		Price:       340,
		Category:    Lighting,
		Description: "Frosted glass globe with brushed brass hardware. Provides soft, diffused lighting.",
		Image:       "https://picsum.photos/seed/light3/800/800",
	},
	{
		ID:          4,
		Name:        "Linen Lounge Chair",
		Price:       1200,
		Category:    Furniture,
		Description: "Deep-seated lounge chair upholstered in Belgian linen. Solid oak frame.",
		Image:       "https://picsum.photos/seed/chair4/800/800",
	},
	{
		ID:          5,
		Name:        "Botanical Incense Set",
		Price:       45,
		Category:    Wellness,
		Description: "A curated set of 30 sticks featuring sandalwood, cedar, and hinoki notes.",
		Image:       "https://picsum.photos/seed/wellness5/800/800",
	},
	{
		ID:          6,
		Name:        "Brushed Steel Table Lamp",
		Price:       210,
		Category:    Lighting,
		Description: "Industrial-inspired table lamp with an adjustable neck and warm LED integration.",
		Image:       "https://picsum.photos/seed/lamp6/800/800",
	},
	{
		ID:          7,
		Name:        "Wool Bouclé Throw",
		Price:       180,
		Category:    Decor,
		Description: "Heavyweight wool throw in ivory bouclé. Perfect for layering on beds or sofas.",
		Image:       "https://picsum.photos/seed/throw7/800/800",
	},
	{
		ID:          8,
		Name:        "Minimalist Oak Sideboard",
		Price:       1450,
		Category:    Furniture,
		Description: "Four-door sideboard in light oak with invisible handles and soft-close drawers.",
		Image:       "https://picsum.photos/seed/sideboard8/800/800",
	},
}
