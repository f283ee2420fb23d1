package main

import (
	"fmt"
	"log"

	"github.com/talospioneers/blueprinthub/internal/devserver"
	"github.com/talospioneers/blueprinthub/internal/pkg/env"
)

func main() {
	env.SetupEnvFile()

	app := devserver.New(devserver.Seed())
	addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000"))
	log.Printf("devserver listening on %s", addr)
	log.Fatal(app.Listen(addr))
}
