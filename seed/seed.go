package seed

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/models"
)

// DefaultCategories is the catalog taxonomy the shop starts with.
func DefaultCategories() []models.CategoryItem {
	return []models.CategoryItem{
		{
			ID:            "mixed",
			NameAR:        "زهور مشكلة",
			NameEN:        "Mixed Flowers",
			DescriptionAR: "تشكيلة رائعة من الزهور الملونة تناسب جميع الأذواق",
			DescriptionEN: "A wonderful selection of colorful flowers for all tastes",
			Icon:          "Palette",
			Color:         "bg-orange-500",
		},
		{
			ID:            "bouquets",
			NameAR:        "المسكات",
			NameEN:        "Bouquets",
			DescriptionAR: "مسكات عرائس وخطوبة مصممة بعناية لليلتك المميزة",
			DescriptionEN: "Wedding and engagement bouquets carefully designed for your special night",
			Icon:          "Heart",
			Color:         "bg-pink-500",
		},
		{
			ID:            "rose_bouquets",
			NameAR:        "باقات الورد",
			NameEN:        "Rose Bouquets",
			DescriptionAR: "باقات من الورد الطبيعي الفاخر للتعبير عن أصدق المشاعر",
			DescriptionEN: "Natural luxury rose bouquets to express your sincerest feelings",
			Icon:          "Flower",
			Color:         "bg-purple-600",
		},
		{
			ID:            "boxes",
			NameAR:        "صناديق هدايا",
			NameEN:        "Gift Boxes",
			DescriptionAR: "صناديق هدايا أنيقة تجمع بين الورد والجمال",
			DescriptionEN: "Elegant gift boxes combining roses and beauty",
			Icon:          "Gift",
			Color:         "bg-blue-500",
		},
	}
}

type seedColor struct {
	key, ar, en, img string
}

var mixedColors = []seedColor{
	{"pink", "وردي", "Pink", "https://images.unsplash.com/photo-1525310238294-7341e9923225?auto=format&fit=crop&q=80&w=400"},
	{"orange", "برتقالي", "Orange", "https://images.unsplash.com/photo-1591123120675-6f7f1aae0e5b?auto=format&fit=crop&q=80&w=400"},
	{"purple", "بنفسجي", "Purple", "https://images.unsplash.com/photo-1516245834210-c4c142787335?auto=format&fit=crop&q=80&w=400"},
	{"white", "أبيض", "White", "https://images.unsplash.com/photo-1523348837708-15d4a09cfac2?auto=format&fit=crop&q=80&w=400"},
	{"blue", "أزرق", "Blue", "https://images.unsplash.com/photo-1533616688419-b7a585564566?auto=format&fit=crop&q=80&w=400"},
}

const (
	engagementImg = "https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&q=80&w=400"
	weddingImg    = "https://images.unsplash.com/photo-1511105612320-2e62a04dd044?auto=format&fit=crop&q=80&w=400"
	roseImg       = "https://images.unsplash.com/photo-1582794543139-8ac9cb0f7b11?auto=format&fit=crop&q=80&w=400"
	boxImg        = "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?auto=format&fit=crop&q=80&w=400"
)

// DefaultProducts generates the 63-item starter catalog: 25 mixed-flower
// color variants, 10 engagement and 10 wedding bouquets, 8 rose bouquets
// and 10 gift boxes.
func DefaultProducts() []models.Product {
	var products []models.Product

	for _, color := range mixedColors {
		for i := 1; i <= 5; i++ {
			products = append(products, models.Product{
				ID:          fmt.Sprintf("mixed-%s-%d", color.key, i),
				NameAR:      fmt.Sprintf("زهور مشكلة %s %d", color.ar, i),
				NameEN:      fmt.Sprintf("Mixed %s %d", color.en, i),
				Category:    "mixed",
				SubCategory: color.key,
				Price:       2500,
				Stock:       20,
				ImageURL:    color.img,
			})
		}
	}

	for i := 1; i <= 10; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("eng-%d", i),
			NameAR:      fmt.Sprintf("مسكة خطوبة راقية %d", i),
			NameEN:      fmt.Sprintf("Engagement Bouquet %d", i),
			Category:    "bouquets",
			SubCategory: "engagement",
			Price:       4500,
			Stock:       15,
			ImageURL:    engagementImg,
		})
	}
	for i := 1; i <= 10; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("wed-%d", i),
			NameAR:      fmt.Sprintf("مسكة زفاف فاخرة %d", i),
			NameEN:      fmt.Sprintf("Wedding Bouquet %d", i),
			Category:    "bouquets",
			SubCategory: "wedding",
			Price:       5000,
			Stock:       12,
			ImageURL:    weddingImg,
		})
	}

	for i := 1; i <= 8; i++ {
		products = append(products, models.Product{
			ID:       fmt.Sprintf("rose-bq-%d", i),
			NameAR:   fmt.Sprintf("باقة ورد طبيعي %d", i),
			NameEN:   fmt.Sprintf("Natural Rose Bouquet %d", i),
			Category: "rose_bouquets",
			Price:    6000,
			Stock:    10,
			ImageURL: roseImg,
		})
	}

	for i := 1; i <= 10; i++ {
		products = append(products, models.Product{
			ID:       fmt.Sprintf("box-%d", i),
			NameAR:   fmt.Sprintf("صندوق هدايا %d", i),
			NameEN:   fmt.Sprintf("Gift Box %d", i),
			Category: "boxes",
			Price:    5000,
			Stock:    10,
			ImageURL: boxImg,
		})
	}

	return products
}

// EnsureCategories lists all categories, seeding the defaults the first
// time the table comes back empty.
func EnsureCategories(db *gorm.DB) ([]models.CategoryItem, error) {
	var categories []models.CategoryItem
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	categories = DefaultCategories()
	if err := db.Create(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// EnsureProducts lists all products, seeding the default catalog the first
// time the table comes back empty.
func EnsureProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	products = DefaultProducts()
	if err := db.Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
