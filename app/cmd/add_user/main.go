package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// add_user creates a staff account from the terminal.
func main() {
	config.Load()
	defer config.GetDB().Close()

	reader := bufio.NewReader(os.Stdin)

	email := prompt(reader, "Email: ")
	firstName := prompt(reader, "First name: ")
	lastName := prompt(reader, "Last name: ")
	password := prompt(reader, "Password: ")

	if email == "" || password == "" {
		log.Fatal("Email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	fmt.Printf("User %s created with id %s\n", user.Email, user.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
