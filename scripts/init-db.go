package main

import (
	"fmt"
	"log"

	"utibu_health/internal/config"
	"utibu_health/internal/database"
	"utibu_health/internal/models"
	"utibu_health/internal/repository"
	"utibu_health/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Customer{},
		&models.Medication{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Statement{},
		&models.CartItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the medication catalog
	fmt.Println("Seeding medication catalog...")
	medicationRepo := repository.NewMedicationRepository(db)
	medications := []models.Medication{
		{Name: "Paracetamol 500mg", Description: "Pain reliever and fever reducer", StockLevel: 200, PricePerUnit: 5.50},
		{Name: "Amoxicillin 250mg", Description: "Broad-spectrum antibiotic capsules", StockLevel: 120, PricePerUnit: 12.00},
		{Name: "Ibuprofen 400mg", Description: "Anti-inflammatory tablets", StockLevel: 150, PricePerUnit: 8.25},
		{Name: "Metformin 500mg", Description: "Oral diabetes medication", StockLevel: 90, PricePerUnit: 15.75},
	}
	for i := range medications {
		if err := medicationRepo.Create(&medications[i]); err != nil {
			log.Printf("Warning: Failed to seed medication %s: %v", medications[i].Name, err)
		}
	}

	// Create a demo customer account
	fmt.Println("Creating demo customer...")
	customerRepo := repository.NewCustomerRepository(db)
	customerService := services.NewCustomerService(customerRepo)

	_, err = customerService.Register(&models.SignupRequest{
		FirstName: "Demo",
		LastName:  "Customer",
		Email:     "demo@utibu.health",
		Phone:     "0700000000",
		Address:   "Nairobi",
		Username:  "demo",
		Password:  "demo1234",
	})
	if err != nil {
		log.Printf("Warning: Failed to create demo customer: %v", err)
	} else {
		fmt.Println("Demo customer created successfully")
		fmt.Println("Username: demo")
		fmt.Println("Password: demo1234")
	}

	fmt.Println("Database initialization completed successfully!")
}
