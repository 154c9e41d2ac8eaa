package main

import (
	"os"

	"github.com/sitesettings/sitesettings/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
