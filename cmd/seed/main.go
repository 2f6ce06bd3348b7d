package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ecosort/backend/internal/auth"
	"github.com/ecosort/backend/internal/config"
	"github.com/ecosort/backend/internal/db"
	"github.com/ecosort/backend/internal/model"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	canSeed, err := shouldSeed(gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("waste items already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	items := buildWasteItems()
	bins := buildBins()
	materials := buildValuableMaterials()
	prices := buildScrapPrices()
	users, err := buildUsers()
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"waste_logs", "scrap_prices", "valuable_materials", "waste_items", "bins", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("seed waste items: %w", err)
		}
		if err := tx.Create(&bins).Error; err != nil {
			return fmt.Errorf("seed bins: %w", err)
		}
		if err := tx.Create(&materials).Error; err != nil {
			return fmt.Errorf("seed valuable materials: %w", err)
		}
		if err := tx.Create(&prices).Error; err != nil {
			return fmt.Errorf("seed scrap prices: %w", err)
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("seeded %d waste items, %d bins, %d valuable materials, %d scrap prices, %d users",
		len(items), len(bins), len(materials), len(prices), len(users))
	return nil
}

func shouldSeed(gdb *gorm.DB) (bool, error) {
	var cnt int64
	if err := gdb.Model(&model.WasteItem{}).Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("count waste items: %w", err)
	}
	if cnt == 0 {
		return true, nil
	}
	return strings.EqualFold(os.Getenv("FORCE_SEED"), "true"), nil
}

func buildWasteItems() []model.WasteItem {
	type item struct {
		name     string
		category model.WasteCategory
		binType  model.WasteCategory
		instr    string
		points   int
	}
	raw := []item{
		{"Vegetable Peels", model.CategoryWet, model.CategoryWet, "Dispose in green/wet waste bin. Can be composted at home.", 2},
		{"Fruit Scraps", model.CategoryWet, model.CategoryWet, "Dispose in green/wet waste bin. Perfect for home composting.", 2},
		{"Tea Leaves", model.CategoryWet, model.CategoryWet, "Dispose in green/wet waste bin. Great for composting.", 1},
		{"Coffee Grounds", model.CategoryWet, model.CategoryWet, "Dispose in green/wet waste bin. Excellent compost material.", 1},
		{"Eggshells", model.CategoryWet, model.CategoryWet, "Dispose in green/wet waste bin. Rich in calcium for compost.", 1},
		{"Leftover Food", model.CategoryWet, model.CategoryWet, "Dispose in green/wet waste bin. Avoid meat and dairy in home compost.", 2},
		{"Coconut Shell", model.CategoryWet, model.CategoryWet, "Break into pieces before disposal in wet waste bin.", 3},
		{"Plastic Bottle", model.CategoryRecyclable, model.CategoryDry, "Clean and dispose in blue/dry waste bin. Remove cap and label if possible.", 3},
		{"Aluminum Can", model.CategoryRecyclable, model.CategoryDry, "Rinse and dispose in blue/dry waste bin. Highly recyclable material.", 4},
		{"Glass Bottle", model.CategoryRecyclable, model.CategoryDry, "Clean and dispose in blue/dry waste bin. Handle with care.", 4},
		{"Cardboard Box", model.CategoryRecyclable, model.CategoryDry, "Flatten and dispose in blue/dry waste bin. Remove tape and staples.", 3},
		{"Newspaper", model.CategoryRecyclable, model.CategoryDry, "Keep dry and dispose in blue/dry waste bin. Highly recyclable.", 2},
		{"Plastic Bag", model.CategoryRecyclable, model.CategoryDry, "Clean and dispose in blue/dry waste bin. Better to reuse multiple times.", 1},
		{"Milk Carton", model.CategoryRecyclable, model.CategoryDry, "Rinse thoroughly and dispose in blue/dry waste bin.", 3},
		{"Tin Can", model.CategoryRecyclable, model.CategoryDry, "Clean and dispose in blue/dry waste bin. Remove labels if possible.", 3},
		{"Pizza Box", model.CategoryRecyclable, model.CategoryDry, "Remove food residue and dispose in blue/dry waste bin. Oil stains make it non-recyclable.", 2},
		{"Broken Ceramic", model.CategoryDry, model.CategoryDry, "Wrap safely and dispose in blue/dry waste bin. Not recyclable.", 1},
		{"Styrofoam", model.CategoryDry, model.CategoryDry, "Dispose in blue/dry waste bin. Difficult to recycle, try to avoid buying.", 1},
		{"Candy Wrapper", model.CategoryDry, model.CategoryDry, "Dispose in blue/dry waste bin. Not recyclable due to mixed materials.", 1},
		{"Laminated Paper", model.CategoryDry, model.CategoryDry, "Dispose in blue/dry waste bin. Plastic coating prevents recycling.", 1},
		{"Bubble Wrap", model.CategoryDry, model.CategoryDry, "Dispose in blue/dry waste bin. Reuse for packaging when possible.", 1},
		{"Paper Cup", model.CategoryDry, model.CategoryDry, "Dispose in blue/dry waste bin. Plastic lining prevents recycling.", 1},
		{"Plastic Straw", model.CategoryDry, model.CategoryDry, "Dispose in blue/dry waste bin. Better to use reusable alternatives.", 1},
		{"Mobile Phone", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Contains valuable and hazardous materials.", 10},
		{"Laptop", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Remove personal data first.", 15},
		{"LED Bulb", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Contains electronic components.", 3},
		{"Keyboard", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Plastic and electronic waste.", 5},
		{"Headphones", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Contains wires and electronic parts.", 4},
		{"Power Cable", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Copper wire can be recycled.", 3},
		{"Old Television", model.CategoryEWaste, model.CategoryEWaste, "Take to authorized e-waste collection center. Large electronic appliance.", 20},
		{"Used Battery", model.CategoryHazardous, model.CategoryHazardous, "Take to battery collection point. Contains toxic chemicals.", 5},
		{"Expired Medicine", model.CategoryHazardous, model.CategoryHazardous, "Return to pharmacy or take to hazardous waste collection. Never flush or throw in regular bins.", 5},
		{"Paint Can", model.CategoryHazardous, model.CategoryHazardous, "Take to hazardous waste collection center. Contains toxic chemicals.", 8},
		{"Pesticide Container", model.CategoryHazardous, model.CategoryHazardous, "Take to hazardous waste collection center. Highly toxic contents.", 10},
		{"Motor Oil", model.CategoryHazardous, model.CategoryHazardous, "Take to auto service center or hazardous waste collection. Never pour down drain.", 8},
		{"Fluorescent Tube", model.CategoryHazardous, model.CategoryHazardous, "Take to authorized collection center. Contains mercury vapor.", 6},
		{"Cleaning Chemical", model.CategoryHazardous, model.CategoryHazardous, "Take to hazardous waste collection center. Read label for specific disposal instructions.", 6},
	}
	items := make([]model.WasteItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, model.WasteItem{
			Name:                 it.name,
			Category:             it.category,
			BinType:              it.binType,
			DisposalInstructions: it.instr,
			Points:               it.points,
		})
	}
	return items
}

func buildBins() []model.Bin {
	return []model.Bin{
		{Name: "Main Gate Wet Waste", Latitude: 12.9716, Longitude: 77.5946, Type: model.CategoryWet, Capacity: 200},
		{Name: "Main Gate Dry Waste", Latitude: 12.9716, Longitude: 77.5947, Type: model.CategoryDry, Capacity: 300},
		{Name: "Cafeteria Wet Waste", Latitude: 12.9720, Longitude: 77.5950, Type: model.CategoryWet, Capacity: 150},
		{Name: "Cafeteria Dry Waste", Latitude: 12.9720, Longitude: 77.5951, Type: model.CategoryDry, Capacity: 200},
		{Name: "Library E-Waste", Latitude: 12.9725, Longitude: 77.5955, Type: model.CategoryEWaste, Capacity: 50},
		{Name: "Admin Block Hazardous", Latitude: 12.9730, Longitude: 77.5960, Type: model.CategoryHazardous, Capacity: 30},
	}
}

func buildValuableMaterials() []model.ValuableMaterial {
	return []model.ValuableMaterial{
		{Name: "Copper Wire", Description: "High-value recyclable metal found in electrical cables and appliances. Remove plastic coating for better value.", ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400", ValueLevel: model.ValueLevelHigh},
		{Name: "Aluminum Cans", Description: "Highly recyclable material. Clean cans fetch better prices. Aluminum can be recycled infinitely.", ImageURL: "https://images.unsplash.com/photo-1572020154673-2cf6c3dd67be?w=400", ValueLevel: model.ValueLevelHigh},
		{Name: "Brass Items", Description: "Heavy metal items like taps, door handles, and decorative pieces. Very valuable for scrap.", ImageURL: "https://images.unsplash.com/photo-1589835515938-ce43d6b2d7e7?w=400", ValueLevel: model.ValueLevelHigh},
		{Name: "Stainless Steel", Description: "Kitchen utensils, appliances, and industrial materials. Good value and widely accepted.", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400", ValueLevel: model.ValueLevelMedium},
		{Name: "Iron & Steel", Description: "Common metal found in household items. Separate from aluminum for better sorting.", ImageURL: "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=400", ValueLevel: model.ValueLevelMedium},
		{Name: "Plastic Bottles (PET)", Description: "Look for recycling code #1. Clean bottles without labels fetch better prices.", ImageURL: "https://images.unsplash.com/photo-1572811866717-3b06b68e2e30?w=400", ValueLevel: model.ValueLevelMedium},
		{Name: "Lead-Acid Batteries", Description: "Car batteries and UPS batteries. Contain valuable lead but also hazardous materials.", ImageURL: "https://images.unsplash.com/photo-1558618666-4c7c4b8c5ed0?w=400", ValueLevel: model.ValueLevelHigh},
		{Name: "Electronic Circuit Boards", Description: "From computers, phones, and appliances. Contain precious metals like gold and silver.", ImageURL: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400", ValueLevel: model.ValueLevelHigh},
	}
}

func buildScrapPrices() []model.ScrapPrice {
	return []model.ScrapPrice{
		{MaterialName: "Copper Wire (Clean)", PricePerKg: 650},
		{MaterialName: "Aluminum Cans", PricePerKg: 180},
		{MaterialName: "Brass Items", PricePerKg: 420},
		{MaterialName: "Stainless Steel", PricePerKg: 85},
		{MaterialName: "Iron & Steel", PricePerKg: 28},
		{MaterialName: "Lead-Acid Battery", PricePerKg: 95},
		{MaterialName: "PET Plastic Bottles", PricePerKg: 15},
		{MaterialName: "Circuit Boards", PricePerKg: 850},
		{MaterialName: "Zinc", PricePerKg: 135},
		{MaterialName: "Tin", PricePerKg: 280},
	}
}

func buildUsers() ([]model.User, error) {
	type demo struct {
		name     string
		email    string
		password string
		points   int
	}
	demos := []demo{
		{"Demo User", "demo@ecosort.com", "demo123", 150},
		{"Eco Warrior", "warrior@ecosort.com", "eco123", 300},
	}
	users := make([]model.User, 0, len(demos))
	for _, d := range demos {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", d.email, err)
		}
		users = append(users, model.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
			Points:       d.points,
		})
	}
	return users, nil
}
