package catalog

import "github.com/Sudippandey619/EcommerceSite-Homeappliance/models"

// categoryNames maps URL slugs to display names. Browsing an unknown slug
// yields an empty product set, not an error.
var categoryNames = map[string]string{
	"refrigerator":    "Refrigerators",
	"washing-machine": "Washing Machines",
	"air-conditioner": "Air Conditioners",
	"television":      "Smart TVs",
	"microwave":       "Microwaves",
	"kitchen":         "Kitchen Appliances",
}

// CategoryName resolves a slug to its display name; unknown slugs fall back
// to the slug itself.
func CategoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return slug
}

// CategorySlugs returns the known category slugs.
func CategorySlugs() []string {
	return []string{"refrigerator", "washing-machine", "air-conditioner", "television", "microwave", "kitchen"}
}

// Products returns the full storefront catalog.
func Products() []models.Product {
	return allProducts
}

// CategoryProducts returns the catalog scoped to one category slug.
func CategoryProducts(slug string) []models.Product {
	name, ok := categoryNames[slug]
	if !ok {
		return nil
	}
	var scoped []models.Product
	for _, p := range allProducts {
		if p.Category == name {
			scoped = append(scoped, p)
		}
	}
	return scoped
}

// PriceBuckets returns the fixed price filter options. The top bucket has no
// upper bound (Max < 0).
func PriceBuckets() []models.PriceBucket {
	return []models.PriceBucket{
		{Label: "Under NPR 10,000", Min: 0, Max: 10000},
		{Label: "NPR 10,000 - 25,000", Min: 10000, Max: 25000},
		{Label: "NPR 25,000 - 50,000", Min: 25000, Max: 50000},
		{Label: "NPR 50,000 - 100,000", Min: 50000, Max: 100000},
		{Label: "Above NPR 100,000", Min: 100000, Max: -1},
	}
}

var allProducts = []models.Product{
	// Refrigerators
	{ID: 1, Name: "Samsung Double Door Refrigerator", Price: 89000, Rating: 4.8, Reviews: 124, Brand: "Samsung", Category: "Refrigerators", Tags: []string{"cooling", "double door", "energy efficient"}, Capacity: "340L", EnergyRating: "5 Star"},
	{ID: 2, Name: "LG Smart Inverter Fridge", Price: 95000, Rating: 4.7, Reviews: 89, Brand: "LG", Category: "Refrigerators", Tags: []string{"smart", "inverter", "energy saving"}, Capacity: "360L", EnergyRating: "4 Star"},
	{ID: 3, Name: "Whirlpool French Door Refrigerator", Price: 125000, Rating: 4.9, Reviews: 156, Brand: "Whirlpool", Category: "Refrigerators", Tags: []string{"french door", "premium", "large capacity"}, Capacity: "450L", EnergyRating: "5 Star"},
	{ID: 4, Name: "Haier Bottom Freezer Refrigerator", Price: 75000, Rating: 4.5, Reviews: 67, Brand: "Haier", Category: "Refrigerators", Capacity: "320L", EnergyRating: "3 Star"},
	{ID: 5, Name: "Godrej Double Door Refrigerator", Price: 65000, Rating: 4.4, Reviews: 92, Brand: "Godrej", Category: "Refrigerators", Capacity: "290L", EnergyRating: "4 Star"},
	{ID: 6, Name: "Panasonic Inverter Refrigerator", Price: 82000, Rating: 4.6, Reviews: 78, Brand: "Panasonic", Category: "Refrigerators", Capacity: "335L", EnergyRating: "5 Star"},

	// Washing machines
	{ID: 7, Name: "Samsung Front Load Washer", Price: 55000, Rating: 4.7, Reviews: 134, Brand: "Samsung", Category: "Washing Machines", Tags: []string{"front load", "automatic", "energy efficient"}, Capacity: "7kg", Type: "Front Load"},
	{ID: 8, Name: "LG Top Load Washing Machine", Price: 42000, Rating: 4.5, Reviews: 98, Brand: "LG", Category: "Washing Machines", Tags: []string{"top load", "affordable", "reliable"}, Capacity: "6.5kg", Type: "Top Load"},
	{ID: 9, Name: "Whirlpool Semi-Automatic Washer", Price: 28000, Rating: 4.3, Reviews: 76, Brand: "Whirlpool", Category: "Washing Machines", Capacity: "8kg", Type: "Semi-Automatic"},
	{ID: 10, Name: "Bosch Front Load Washer-Dryer", Price: 89000, Rating: 4.8, Reviews: 112, Brand: "Bosch", Category: "Washing Machines", Tags: []string{"washer dryer", "premium", "german engineering"}, Capacity: "7kg", Type: "Washer-Dryer"},
	{ID: 11, Name: "Haier Automatic Washing Machine", Price: 38000, Rating: 4.4, Reviews: 85, Brand: "Haier", Category: "Washing Machines", Capacity: "6kg", Type: "Fully Automatic"},
	{ID: 12, Name: "IFB Front Load Washing Machine", Price: 48000, Rating: 4.6, Reviews: 91, Brand: "IFB", Category: "Washing Machines", Capacity: "6.5kg", Type: "Front Load"},

	// Air conditioners
	{ID: 13, Name: "Daikin Split AC 1.5 Ton", Price: 52000, Rating: 4.8, Reviews: 167, Brand: "Daikin", Category: "Air Conditioners", Tags: []string{"split ac", "cooling", "energy efficient"}, Capacity: "1.5 Ton", Type: "Split AC"},
	{ID: 14, Name: "Mitsubishi Window AC 1 Ton", Price: 38000, Rating: 4.5, Reviews: 89, Brand: "Mitsubishi", Category: "Air Conditioners", Capacity: "1 Ton", Type: "Window AC"},
	{ID: 15, Name: "LG Dual Inverter AC 2 Ton", Price: 68000, Rating: 4.7, Reviews: 143, Brand: "LG", Category: "Air Conditioners", Tags: []string{"dual inverter", "powerful cooling", "smart"}, Capacity: "2 Ton", Type: "Split AC"},
	{ID: 16, Name: "Samsung AR7000 Split AC", Price: 45000, Rating: 4.6, Reviews: 112, Brand: "Samsung", Category: "Air Conditioners", Tags: []string{"split ac", "affordable", "reliable"}, Capacity: "1.5 Ton", Type: "Split AC"},
	{ID: 17, Name: "Voltas Window AC 1.5 Ton", Price: 35000, Rating: 4.3, Reviews: 78, Brand: "Voltas", Category: "Air Conditioners", Capacity: "1.5 Ton", Type: "Window AC"},
	{ID: 18, Name: "Panasonic Inverter AC 1 Ton", Price: 42000, Rating: 4.5, Reviews: 95, Brand: "Panasonic", Category: "Air Conditioners", Capacity: "1 Ton", Type: "Split AC"},

	// Smart TVs
	{ID: 19, Name: "Samsung 55\" 4K Smart TV", Price: 89000, Rating: 4.8, Reviews: 234, Brand: "Samsung", Category: "Smart TVs", Tags: []string{"4k", "smart tv", "large screen"}, Size: "55\"", Resolution: "4K UHD"},
	{ID: 20, Name: "LG 43\" OLED TV", Price: 125000, Rating: 4.9, Reviews: 187, Brand: "LG", Category: "Smart TVs", Tags: []string{"oled", "premium", "perfect colors"}, Size: "43\"", Resolution: "4K OLED"},
	{ID: 21, Name: "Sony 65\" Bravia TV", Price: 165000, Rating: 4.8, Reviews: 156, Brand: "Sony", Category: "Smart TVs", Size: "65\"", Resolution: "4K HDR"},
	{ID: 22, Name: "TCL 50\" Android TV", Price: 58000, Rating: 4.5, Reviews: 123, Brand: "TCL", Category: "Smart TVs", Size: "50\"", Resolution: "4K UHD"},
	{ID: 23, Name: "Mi 32\" Smart TV", Price: 28000, Rating: 4.4, Reviews: 198, Brand: "Xiaomi", Category: "Smart TVs", Tags: []string{"budget", "smart tv", "android tv"}, Size: "32\"", Resolution: "Full HD"},
	{ID: 24, Name: "Panasonic 40\" LED TV", Price: 42000, Rating: 4.6, Reviews: 89, Brand: "Panasonic", Category: "Smart TVs", Size: "40\"", Resolution: "Full HD"},

	// Microwaves
	{ID: 25, Name: "Samsung 28L Convection Microwave", Price: 18500, Rating: 4.7, Reviews: 134, Brand: "Samsung", Category: "Microwaves", Tags: []string{"convection", "large capacity", "versatile"}, Capacity: "28L", Type: "Convection"},
	{ID: 26, Name: "LG 21L Solo Microwave", Price: 12000, Rating: 4.5, Reviews: 89, Brand: "LG", Category: "Microwaves", Tags: []string{"solo", "compact", "affordable"}, Capacity: "21L", Type: "Solo"},
	{ID: 27, Name: "Whirlpool 25L Grill Microwave", Price: 15500, Rating: 4.6, Reviews: 112, Brand: "Whirlpool", Category: "Microwaves", Capacity: "25L", Type: "Grill"},
	{ID: 28, Name: "Panasonic 27L Convection Oven", Price: 22000, Rating: 4.8, Reviews: 78, Brand: "Panasonic", Category: "Microwaves", Tags: []string{"convection oven", "premium", "baking"}, Capacity: "27L", Type: "Convection"},
	{ID: 29, Name: "IFB 20L Solo Microwave", Price: 9500, Rating: 4.4, Reviews: 95, Brand: "IFB", Category: "Microwaves", Capacity: "20L", Type: "Solo"},
	{ID: 30, Name: "Bajaj 17L Grill Microwave", Price: 8500, Rating: 4.2, Reviews: 67, Brand: "Bajaj", Category: "Microwaves", Capacity: "17L", Type: "Grill"},

	// Kitchen appliances
	{ID: 31, Name: "Philips Air Fryer 4.1L", Price: 15500, Rating: 4.8, Reviews: 267, Brand: "Philips", Category: "Kitchen Appliances", Tags: []string{"air fryer", "healthy cooking", "oil free"}, Type: "Air Fryer"},
	{ID: 32, Name: "Preethi Mixer Grinder 3 Jar", Price: 8500, Rating: 4.6, Reviews: 189, Brand: "Preethi", Category: "Kitchen Appliances", Tags: []string{"mixer grinder", "indian cooking", "powerful motor"}, Type: "Mixer Grinder"},
	{ID: 33, Name: "Bajaj Induction Cooktop", Price: 3500, Rating: 4.4, Reviews: 145, Brand: "Bajaj", Category: "Kitchen Appliances", Type: "Induction Cooktop"},
	{ID: 34, Name: "Butterfly Electric Kettle", Price: 1800, Rating: 4.3, Reviews: 98, Brand: "Butterfly", Category: "Kitchen Appliances", Tags: []string{"electric kettle", "budget", "quick boiling"}, Type: "Electric Kettle"},
	{ID: 35, Name: "Prestige Rice Cooker 1.8L", Price: 4200, Rating: 4.5, Reviews: 156, Brand: "Prestige", Category: "Kitchen Appliances", Type: "Rice Cooker"},
	{ID: 36, Name: "Morphy Richards OTG 28L", Price: 12500, Rating: 4.7, Reviews: 123, Brand: "Morphy Richards", Category: "Kitchen Appliances", Type: "OTG"},
}
