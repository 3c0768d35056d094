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

	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("lifeline")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS lifeline`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO lifeline").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Profile{},
		&schema.Donor{},
		&schema.Volunteer{},
		&schema.Admin{},
		&schema.BloodRequest{},
		&schema.Assignment{},
		&schema.Donation{},
		&schema.Route{},
		&schema.RoutePosition{},
		&schema.Notification{},
	).Error; err != nil {
		panic(err)
	}

	// one active assignment of each type per request
	if err := db.Model(schema.Assignment{}).
		Where(fmt.Sprintf("status IN ('%s', '%s')", schema.AssignmentPending, schema.AssignmentAccepted)).
		AddUniqueIndex("assignment_active_unique", "request_id", "type").Error; err != nil {
		panic(err)
	}

	if viper.GetString("mongo.conn") != "" {
		if err := migrateMongo(); err != nil {
			panic(err)
		}
	}
}

func migrateMongo() error {
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
	defer client.Disconnect(ctx)

	fmt.Println("initialize route position collection")
	return store.NewMongoPositionLog(client, viper.GetString("mongo.database")).EnsureIndexes(ctx)
}
