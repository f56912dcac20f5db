package main

import (
	"log"
	"os"

	"github.com/HUYDGD/Japanese-Ajatt-Tools/app"
)

func main() {
	if err := app.New().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
