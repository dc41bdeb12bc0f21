package configs

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintKeys creates a fresh admin API key and session key pair and
// writes them to .env.new_keys so they can be copied into the real .env.
func GenerateAndPrintKeys() error {
	fmt.Println("Generating new keys...")

	adminKey := securecookie.GenerateRandomKey(32)
	if adminKey == nil {
		return fmt.Errorf("error: could not generate admin API key")
	}

	sessionKey := securecookie.GenerateRandomKey(64)
	if sessionKey == nil {
		return fmt.Errorf("error: could not generate session key")
	}

	adminKeyBase64 := base64.URLEncoding.EncodeToString(adminKey)
	sessionKeyBase64 := base64.URLEncoding.EncodeToString(sessionKey)

	fmt.Println("\n================================================")
	fmt.Println("Generated keys:")
	fmt.Printf("ADMIN_API_KEY=%s\n", adminKeyBase64)
	fmt.Printf("SESSION_KEY=%s\n", sessionKeyBase64)
	fmt.Println("================================================")

	envFilePath := ".env.new_keys"
	file, err := os.Create(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", envFilePath, err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "ADMIN_API_KEY=%s\nSESSION_KEY=%s\n", adminKeyBase64, sessionKeyBase64)
	if err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", envFilePath, err)
	}

	fmt.Printf("\n✅ Keys have been written to '%s'.\n", envFilePath)
	fmt.Println("Please copy these lines from that file into your actual .env file.")
	fmt.Println("REMINDER: regenerating the session key invalidates existing orcamento cookies.")

	return nil
}
