// Command seed is the offline catalog-seeding utility. It is the only
// place a bulk clear exists; the HTTP service never deletes dishes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	database "github.com/shivaramgundoju/AR-MENU/config"
	"github.com/shivaramgundoju/AR-MENU/models"
	"github.com/shivaramgundoju/AR-MENU/store"
)

var clearFirst bool

var rootCmd = &cobra.Command{
	Use:   "armenu-seed",
	Short: "Seed the AR menu dish catalog",
	Long:  "Offline utility for loading sample dishes into the catalog database.",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample dish set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every dish from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClear()
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearFirst, "clear", false, "Clear existing dishes before seeding")
	rootCmd.AddCommand(seedCmd, clearCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore() (*store.MongoDishStore, func()) {
	client := database.DBinstance()
	cleanup := func() { client.Disconnect(context.Background()) }
	return store.NewMongoDishStore(database.OpenCollection(client, "dishes")), cleanup
}

func runSeed() error {
	dishStore, cleanup := openStore()
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if clearFirst {
		removed, err := dishStore.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("clear existing dishes: %w", err)
		}
		log.Printf("Cleared %d existing dishes", removed)
	}

	for _, dish := range sampleDishes() {
		created, err := dishStore.Insert(ctx, &dish)
		if err != nil {
			return fmt.Errorf("insert %q: %w", *dish.Name, err)
		}
		log.Printf("Added %s (%s) price=%.2f model=%s", *created.Name, created.Category, *created.Price, created.ModelURL)
	}

	log.Println("Database seeded successfully")
	return nil
}

func runClear() error {
	dishStore, cleanup := openStore()
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := dishStore.DeleteAll(ctx)
	if err != nil {
		return err
	}
	log.Printf("Removed %d dishes", removed)
	return nil
}

func sampleDishes() []models.Dish {
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	newDish := func(name, description string, price float64, category, image, model, iosModel string) models.Dish {
		return models.Dish{
			Name:        &name,
			Description: description,
			Price:       &price,
			Category:    category,
			ImageURL:    image,
			ModelURL:    model,
			IOSModelURL: iosModel,
		}
	}

	return []models.Dish{
		newDish("Margherita Pizza", "Classic Italian pizza with fresh mozzarella and basil",
			199.00, "Main Course",
			"https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800",
			baseURL+"/models/pizza.glb", baseURL+"/models/pizza.usdz"),
		newDish("Burger", "Juicy beef patty with melted cheese, lettuce, tomato, and special sauce",
			149.00, "Main Course",
			"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800",
			baseURL+"/models/burgar.glb", baseURL+"/models/burgar.usdz"),
		newDish("Garlic Bread", "Toasted baguette slices with garlic butter and herbs",
			79.00, "Starters",
			"https://images.unsplash.com/photo-1619535860434-ba1d8fa12536?w=800",
			baseURL+"/models/garlic-bread.glb", ""),
		newDish("Chocolate Lava Cake", "Warm chocolate cake with a molten center",
			129.00, "Desserts",
			"https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=800",
			"", ""),
		newDish("Cold Coffee", "Chilled coffee blended with ice cream",
			99.00, "Beverages",
			"https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=800",
			"", ""),
	}
}
