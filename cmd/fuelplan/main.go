package main

import "github.com/andrescamacho/fuelplan-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
