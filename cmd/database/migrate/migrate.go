package migration

import (
	"fmt"
	"log"

	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"gorm.io/gorm"
)

// seedCategories is the fixed directory the classifier and the client
// both rely on. Categories are immutable from the API's perspective.
var seedCategories = []struct {
	Major string
	Sub   string
}{
	{"동물성 식재료", "육류"},
	{"동물성 식재료", "해산물"},
	{"동물성 식재료", "유제품"},
	{"식물성 식재료", "채소"},
	{"식물성 식재료", "과일"},
	{"식물성 식재료", "콩류"},
	{"가공식품, 저장식품, 반찬", "간편식"},
	{"가공식품, 저장식품, 반찬", "반찬"},
	{"양념, 조미료", "양념장"},
	{"양념, 조미료", "소스"},
	{"기타 (디저트 등)", "디저트"},
	{"기타 (디저트 등)", "음료"},
}

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PushToken{}); err != nil {
		log.Fatalf("Error migrating push token database: %v", err)
		return err
	}

	if err := seed(db); err != nil {
		log.Fatalf("Error seeding categories: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seed(db *gorm.DB) error {
	for i, c := range seedCategories {
		category := entities.Category{
			MajorName: c.Major,
			SubName:   c.Sub,
			SortOrder: i + 1,
		}
		err := db.Where("major_name = ? AND sub_name = ?", c.Major, c.Sub).
			FirstOrCreate(&category).Error
		if err != nil {
			return err
		}
	}
	return nil
}
