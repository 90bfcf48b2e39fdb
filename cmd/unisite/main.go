// Command unisite runs the UniUnity site: public pages, admin console, and
// the JSON API, all from one binary.
package main

import (
	"log"

	"github.com/joho/godotenv"

	unisite "github.com/uniunity/unisite"
)

func main() {
	// A missing .env is fine; the environment may be set by the supervisor.
	_ = godotenv.Load()

	cfg, err := unisite.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	app, err := unisite.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
