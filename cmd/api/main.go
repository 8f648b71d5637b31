// The api binary serves the portfolio backend: the public site endpoints
// plus the invitation-based admin plane.
package main

import (
	"log"

	"github.com/foliohq/folio/internal/portfolio/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
