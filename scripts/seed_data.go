package main

import (
	"fmt"
	"log"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tanaki1609/shop-api/domain/models"
)

// Config from .env
const (
	DB_HOST     = "localhost"
	DB_PORT     = "5432"
	DB_USER     = "postgres"
	DB_PASSWORD = ""
	DB_NAME     = "shop_api"
)

func main() {
	fmt.Println("============================================")
	fmt.Println("  Shop API - Seed Sample Data")
	fmt.Println("============================================")
	fmt.Println()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.Review{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	categories := seedCategories(db)
	tags := seedTags(db)
	seedProducts(db, categories, tags)

	fmt.Println()
	fmt.Println("============================================")
	fmt.Println("  Done! Ready for testing.")
	fmt.Println("============================================")
}

func seedCategories(db *gorm.DB) map[string]*models.Category {
	fmt.Println("[1/3] Seeding categories...")

	names := []string{"Electronics", "Books", "Clothing"}
	out := make(map[string]*models.Category, len(names))

	for _, name := range names {
		category := &models.Category{Name: name, Slug: slug.Make(name)}
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(category).Error; err != nil {
			fmt.Printf("     Warning: could not seed category %s: %v\n", name, err)
			continue
		}
		out[name] = category
	}

	fmt.Printf("     %d categories ready\n", len(out))
	return out
}

func seedTags(db *gorm.DB) map[string]*models.Tag {
	fmt.Println("[2/3] Seeding tags...")

	names := []string{"new", "sale", "popular"}
	out := make(map[string]*models.Tag, len(names))

	for _, name := range names {
		tag := &models.Tag{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(tag).Error; err != nil {
			fmt.Printf("     Warning: could not seed tag %s: %v\n", name, err)
			continue
		}
		out[name] = tag
	}

	fmt.Printf("     %d tags ready\n", len(out))
	return out
}

func seedProducts(db *gorm.DB, categories map[string]*models.Category, tags map[string]*models.Tag) {
	fmt.Println("[3/3] Seeding products...")

	text := "Seeded sample product."
	samples := []struct {
		title    string
		price    float64
		category string
		tags     []string
	}{
		{"Gaming laptop", 1499.99, "Electronics", []string{"new", "popular"}},
		{"Wireless mouse", 29.90, "Electronics", []string{"sale"}},
		{"Science fiction anthology", 18.50, "Books", []string{"popular"}},
	}

	created := 0
	for _, sample := range samples {
		category, ok := categories[sample.category]
		if !ok {
			continue
		}

		productTags := make([]models.Tag, 0, len(sample.tags))
		for _, name := range sample.tags {
			if tag, ok := tags[name]; ok {
				productTags = append(productTags, *tag)
			}
		}

		product := &models.Product{
			Title:      sample.title,
			Text:       &text,
			Price:      decimal.NewFromFloat(sample.price),
			IsActive:   true,
			CategoryID: &category.ID,
			Tags:       productTags,
		}

		var count int64
		db.Model(&models.Product{}).Where("title = ?", sample.title).Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Omit("Tags.*").Create(product).Error; err != nil {
			fmt.Printf("     Warning: could not seed product %s: %v\n", sample.title, err)
			continue
		}
		created++
	}

	fmt.Printf("     %d products created\n", created)
}
