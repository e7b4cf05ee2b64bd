package main

import (
	"log"

	"github.com/wajeht/bang/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("bang failed to start: %v", err)
	}
}
