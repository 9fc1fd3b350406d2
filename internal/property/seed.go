package property

// seedEntry pairs a listing with the ID it ships with.
type seedEntry struct {
	id    int64
	draft Draft
}

// seedCatalog is the sample catalog every fresh process starts from.
var seedCatalog = []seedEntry{
	{
		id: 1,
		draft: Draft{
			Title:    "Luxury 2BHK Apartment",
			Location: "CMC, Addis Ababa",
			Price:    20000,
			Period:   "/month",
			Bedrooms: "2-bed",
			Area:     "100 m²",
			Type:     Apartment,
			City:     AddisAbaba,
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1560448075-bb4caa6c1efd?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 9.0206, Lng: 38.8096},
			Description: "Spacious 2-bedroom apartment with modern finishes in CMC. Close to amenities and transit.",
		},
	},
	{
		id: 2,
		draft: Draft{
			Title:    "1 Room with Attached Bathroom",
			Location: "Ayat, Addis Ababa",
			Price:    10000,
			Period:   "/month",
			Bedrooms: "Bathroom",
			Area:     "16 m²",
			Type:     House,
			City:     AddisAbaba,
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 9.0321, Lng: 38.8758},
			Description: "Compact studio with attached bathroom ideal for students near Ayat.",
		},
	},
	{
		id: 3,
		draft: Draft{
			Title:    "Cozy Studio Apartment",
			Location: "CMC, Addis Ababa",
			Price:    18000,
			Period:   "/month",
			Bedrooms: "Studio",
			Area:     "24 m²",
			Type:     Apartment,
			City:     AddisAbaba,
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1521783988139-893ce36b95d9?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 9.0237, Lng: 38.8085},
			Description: "Modern studio with natural light and efficient layout.",
		},
	},
	{
		id: 4,
		draft: Draft{
			Title:    "Modern Office Space",
			Location: "Bole, Addis Ababa",
			Price:    25000,
			Period:   "/month",
			Bedrooms: "Office",
			Area:     "50 m²",
			Type:     Office,
			City:     AddisAbaba,
			Images: []string{
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 8.9941, Lng: 38.7892},
			Description: "Bright office space in Bole business district.",
		},
	},
	{
		id: 9,
		draft: Draft{
			Title:    "Family House with Garden",
			Location: "Sarbet, Addis Ababa",
			Price:    35000,
			Period:   "/month",
			Bedrooms: "3-bed",
			Area:     "150 m²",
			Type:     House,
			City:     AddisAbaba,
			Images: []string{
				"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d46?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1501183638710-841dd1904471?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 8.9899, Lng: 38.7578},
			Description: "Spacious family home with a private garden.",
		},
	},
	{
		id: 5,
		draft: Draft{
			Title:    "Modern 3BR House",
			Location: "Westlands, Nairobi",
			Price:    45000,
			Period:   "/month",
			Bedrooms: "3-bed",
			Area:     "120 m²",
			Type:     House,
			City:     Nairobi,
			Images: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1560448075-bb4caa6c1efd?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d46?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: -1.2649, Lng: 36.811},
			Description: "Stylish house in Westlands with modern amenities.",
		},
	},
	{
		id: 6,
		draft: Draft{
			Title:    "Executive Apartment",
			Location: "Karen, Nairobi",
			Price:    35000,
			Period:   "/month",
			Bedrooms: "2-bed",
			Area:     "85 m²",
			Type:     Apartment,
			City:     Nairobi,
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1501183638710-841dd1904471?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: -1.3251, Lng: 36.7205},
			Description: "Executive apartment in leafy Karen.",
		},
	},
	{
		id: 10,
		draft: Draft{
			Title:    "Corporate Office Suite",
			Location: "Upper Hill, Nairobi",
			Price:    60000,
			Period:   "/month",
			Bedrooms: "Office",
			Area:     "100 m²",
			Type:     Office,
			City:     Nairobi,
			Images: []string{
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1521783988139-893ce36b95d9?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: -1.3006, Lng: 36.817},
			Description: "Prime office suite in Upper Hill.",
		},
	},
	{
		id: 11,
		draft: Draft{
			Title:    "Penthouse Apartment",
			Location: "Kilimani, Nairobi",
			Price:    55000,
			Period:   "/month",
			Bedrooms: "3-bed",
			Area:     "140 m²",
			Type:     Apartment,
			City:     Nairobi,
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1560448075-bb4caa6c1efd?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: -1.2926, Lng: 36.7831},
			Description: "Penthouse with city views in Kilimani.",
		},
	},
	{
		id: 7,
		draft: Draft{
			Title:    "Luxury Villa",
			Location: "Victoria Island, Lagos",
			Price:    150000,
			Period:   "/month",
			Bedrooms: "4-bed",
			Area:     "200 m²",
			Type:     House,
			City:     Lagos,
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1560448075-bb4caa6c1efd?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d46?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 6.4281, Lng: 3.4219},
			Description: "Luxury waterfront villa in VI.",
		},
	},
	{
		id: 8,
		draft: Draft{
			Title:    "Business Office",
			Location: "Ikeja, Lagos",
			Price:    80000,
			Period:   "/month",
			Bedrooms: "Office",
			Area:     "75 m²",
			Type:     Office,
			City:     Lagos,
			Images: []string{
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1521783988139-893ce36b95d9?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 6.6018, Lng: 3.3515},
			Description: "Business-ready office in Ikeja.",
		},
	},
	{
		id: 12,
		draft: Draft{
			Title:    "Waterfront Apartment",
			Location: "Lekki, Lagos",
			Price:    120000,
			Period:   "/month",
			Bedrooms: "2-bed",
			Area:     "90 m²",
			Type:     Apartment,
			City:     Lagos,
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1560448075-bb4caa6c1efd?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1501183638710-841dd1904471?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 6.458, Lng: 3.6015},
			Description: "Bright waterfront apartment in Lekki.",
		},
	},
	{
		id: 13,
		draft: Draft{
			Title:    "Suburban Family Home",
			Location: "Ajah, Lagos",
			Price:    95000,
			Period:   "/month",
			Bedrooms: "3-bed",
			Area:     "180 m²",
			Type:     House,
			City:     Lagos,
			Images: []string{
				"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d46?w=1200&h=900&fit=crop",
				"https://images.unsplash.com/photo-1501183638710-841dd1904471?w=1200&h=900&fit=crop",
			},
			Coords:      Coords{Lat: 6.4698, Lng: 3.5852},
			Description: "Comfortable family home in Ajah.",
		},
	},
}

// Seed returns the sample listings, bucket order preserved per city.
func Seed() []Property {
	props := make([]Property, 0, len(seedCatalog))
	for _, e := range seedCatalog {
		props = append(props, e.draft.Build(e.id))
	}
	return props
}
