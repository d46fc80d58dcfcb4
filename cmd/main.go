package main

import (
	"healthcare-admin-portal/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize portal: %v", err)
	}

	app.Run()
}
