package catalog

import "github.com/angelmondragon/bacola-storefront/pkg/enums"

// Default returns the static grocery catalog the storefront ships with.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultProducts = []Product{
	{
		ID:            "1",
		Title:         "All Natural Italian-Style Chicken Meatballs",
		Price:         "$7.25",
		OriginalPrice: "$9.35",
		Discount:      "23%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   4,
		Category:      "Meats & Seafood",
		Brand:         "Hemani",
		Weight:        "1 lb",
		Image:         "https://images.pexels.com/photos/3962286/pexels-photo-3962286.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  24,
	},
	{
		ID:            "2",
		Title:         "Angie's Boomchickapop Sweet & Salty Kettle Corn",
		Price:         "$3.29",
		OriginalPrice: "$4.29",
		Discount:      "23%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   7,
		Category:      "Biscuits & Snacks",
		Brand:         "Angie's",
		Weight:        "7 oz",
		Image:         "https://images.pexels.com/photos/4110251/pexels-photo-4110251.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  18,
	},
	{
		ID:            "3",
		Title:         "Foster Farms Takeout Crispy Classic Buffalo Wings",
		Price:         "$17.19",
		OriginalPrice: "$19.50",
		Discount:      "12%",
		Stock:         enums.StockStatusOnSale,
		Rating:        3,
		RatingCount:   2,
		Category:      "Frozen Foods",
		Brand:         "Foster Farms",
		Weight:        "2 lb",
		Badge:         "COLD SALE",
		BadgeColor:    "bg-blue-500",
		Image:         "https://images.pexels.com/photos/2338407/pexels-photo-2338407.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  9,
	},
	{
		ID:            "4",
		Title:         "Blue Diamond Almonds Lightly Salted",
		Price:         "$11.69",
		OriginalPrice: "$13.75",
		Discount:      "15%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   10,
		Category:      "Biscuits & Snacks",
		Brand:         "Blue Diamond",
		Weight:        "16 oz",
		Image:         "https://images.pexels.com/photos/1295572/pexels-photo-1295572.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  32,
	},
	{
		ID:            "5",
		Title:         "Chobani Complete Vanilla Greek Yogurt",
		Price:         "$5.49",
		OriginalPrice: "$6.49",
		Discount:      "15%",
		Stock:         enums.StockStatusInStock,
		Rating:        5,
		RatingCount:   12,
		Category:      "Dairy & Eggs",
		Brand:         "Chobani",
		Weight:        "32 oz",
		Badge:         "ORGANIC",
		BadgeColor:    "bg-emerald-500",
		Image:         "https://images.pexels.com/photos/1435706/pexels-photo-1435706.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  21,
	},
	{
		ID:            "6",
		Title:         "Canada Dry Ginger Ale - 2 L Bottle",
		Price:         "$1.49",
		OriginalPrice: "$1.99",
		Discount:      "25%",
		Stock:         enums.StockStatusOnSale,
		Rating:        4,
		RatingCount:   6,
		Category:      "Beverages",
		Brand:         "Canada Dry",
		Weight:        "2 L",
		Image:         "https://images.pexels.com/photos/2983100/pexels-photo-2983100.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  45,
	},
	{
		ID:            "7",
		Title:         "Fresh Organic Broccoli Crowns",
		Price:         "$2.49",
		OriginalPrice: "$2.99",
		Discount:      "17%",
		Stock:         enums.StockStatusInStock,
		Rating:        5,
		RatingCount:   9,
		Category:      "Grocery & Staples",
		Brand:         "Fresh",
		Weight:        "1 lb",
		Badge:         "ORGANIC",
		BadgeColor:    "bg-emerald-500",
		Image:         "https://images.pexels.com/photos/47347/broccoli-vegetable-food-healthy-47347.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  37,
	},
	{
		ID:            "8",
		Title:         "Simply Orange Pulp Free Juice",
		Price:         "$4.35",
		OriginalPrice: "$5.25",
		Discount:      "17%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   14,
		Category:      "Beverages",
		Brand:         "Simply",
		Weight:        "52 fl oz",
		Image:         "https://images.pexels.com/photos/1536868/pexels-photo-1536868.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  28,
	},
	{
		ID:            "9",
		Title:         "USDA Choice Angus Beef Stew Meat",
		Price:         "$14.20",
		OriginalPrice: "$16.90",
		Discount:      "16%",
		Stock:         enums.StockStatusOnSale,
		Rating:        4,
		RatingCount:   5,
		Category:      "Meats & Seafood",
		Brand:         "Fresh",
		Weight:        "1.5 lb",
		Image:         "https://images.pexels.com/photos/618775/pexels-photo-618775.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  11,
	},
	{
		ID:            "10",
		Title:         "Oreo Chocolate Sandwich Cookies Family Size",
		Price:         "$4.95",
		OriginalPrice: "$5.95",
		Discount:      "17%",
		Stock:         enums.StockStatusInStock,
		Rating:        5,
		RatingCount:   22,
		Category:      "Biscuits & Snacks",
		Brand:         "Oreo",
		Weight:        "19.1 oz",
		Image:         "https://images.pexels.com/photos/2067396/pexels-photo-2067396.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  40,
	},
	{
		ID:            "11",
		Title:         "Haagen-Dazs Vanilla Bean Ice Cream",
		Price:         "$6.39",
		OriginalPrice: "$7.49",
		Discount:      "15%",
		Stock:         enums.StockStatusOnSale,
		Rating:        5,
		RatingCount:   17,
		Category:      "Frozen Foods",
		Brand:         "Haagen-Dazs",
		Weight:        "14 oz",
		Badge:         "COLD SALE",
		BadgeColor:    "bg-blue-500",
		Image:         "https://images.pexels.com/photos/1352281/pexels-photo-1352281.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  15,
	},
	{
		ID:            "12",
		Title:         "Large Grade A Brown Eggs - Dozen",
		Price:         "$3.89",
		OriginalPrice: "$4.49",
		Discount:      "13%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   19,
		Category:      "Dairy & Eggs",
		Brand:         "Golden Farms",
		Weight:        "24 oz",
		Image:         "https://images.pexels.com/photos/162712/egg-white-food-protein-162712.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  50,
	},
	{
		ID:            "13",
		Title:         "Wild Caught Sockeye Salmon Fillets",
		Price:         "$24.99",
		OriginalPrice: "$28.99",
		Discount:      "14%",
		Stock:         enums.StockStatusInStock,
		Rating:        5,
		RatingCount:   8,
		Category:      "Meats & Seafood",
		Brand:         "Fresh",
		Weight:        "1 lb",
		Image:         "https://images.pexels.com/photos/3296280/pexels-photo-3296280.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  7,
	},
	{
		ID:            "14",
		Title:         "Basmati Long Grain White Rice",
		Price:         "$9.75",
		OriginalPrice: "$11.25",
		Discount:      "13%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   11,
		Category:      "Grocery & Staples",
		Brand:         "Hemani",
		Weight:        "5 lb",
		Image:         "https://images.pexels.com/photos/723198/pexels-photo-723198.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  26,
	},
	{
		ID:            "15",
		Title:         "Sparkling Water Variety Pack - 12 Cans",
		Price:         "$5.85",
		OriginalPrice: "$6.95",
		Discount:      "16%",
		Stock:         enums.StockStatusOnSale,
		Rating:        3,
		RatingCount:   4,
		Category:      "Beverages",
		Brand:         "LaCroix",
		Weight:        "144 fl oz",
		Image:         "https://images.pexels.com/photos/2995299/pexels-photo-2995299.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  33,
	},
	{
		ID:            "16",
		Title:         "Stone Ground Whole Wheat Bread Loaf",
		Price:         "$3.35",
		OriginalPrice: "$3.99",
		Discount:      "16%",
		Stock:         enums.StockStatusInStock,
		Rating:        4,
		RatingCount:   13,
		Category:      "Grocery & Staples",
		Brand:         "Golden Farms",
		Weight:        "24 oz",
		Badge:         "ORGANIC",
		BadgeColor:    "bg-emerald-500",
		Image:         "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg?auto=compress&cs=tinysrgb&w=400",
		Availability:  29,
	},
}
