package main

import "github.com/joho/godotenv"

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	Execute()
}
