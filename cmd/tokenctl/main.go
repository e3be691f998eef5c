// tokenctl шифрует и проверяет токены GitHub для переменной GITHUB_TOKEN.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env не обязателен
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
