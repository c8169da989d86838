package main

import (
	"fmt"
	"log"

	"github.com/forum-api/forum/shared/crypto"
)

func main() {
	key, err := crypto.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate jwt key: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Println("  JWT Signing Key (HS256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Generated key (base64):")
	fmt.Println(key)
	fmt.Println()
	fmt.Println("Add this to your config/private.yaml:")
	fmt.Printf("jwt_key: \"%s\"\n", key)
	fmt.Println("or export it as JWT_KEY.")
	fmt.Println()
	fmt.Println("IMPORTANT:")
	fmt.Println("- Rotating the key logs out every user.")
	fmt.Println("- Never commit this key to version control!")
	fmt.Println("=================================================")
}
