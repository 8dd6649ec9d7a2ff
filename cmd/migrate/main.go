package main

import (
	"log"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
)

// migrate applies the schema without starting the server.
func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	log.Println("Migrations applied")
}
