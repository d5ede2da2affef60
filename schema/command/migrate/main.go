package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hofix-app/hofix-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("hofix")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS hofix`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO hofix").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.WalletTransaction{},
		&schema.DepositTransaction{},
	).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := seedServiceCatalog(); err != nil {
		panic(err)
	}
}

// seedServiceCatalog fills the service catalog with the launch categories.
// Re-running is harmless, existing categories are kept.
func seedServiceCatalog() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	fmt.Println("initialize service catalog")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.ServiceCollection)

	categories := []struct {
		Category  string
		Name      string
		BasePrice float64
	}{
		{"plumbing", "Plumbing Service", 500},
		{"electrical", "Electrical Service", 500},
		{"carpentry", "Carpentry Service", 500},
		{"painting", "Painting Service", 800},
		{"cleaning", "Cleaning Service", 300},
		{"appliance_repair", "Appliance Repair Service", 600},
	}

	for _, entry := range categories {
		count, err := c.CountDocuments(ctx, map[string]interface{}{"category": entry.Category})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := c.InsertOne(ctx, schema.Service{
			Name:      entry.Name,
			Category:  entry.Category,
			BasePrice: entry.BasePrice,
		}); err != nil {
			return err
		}
	}

	return nil
}
