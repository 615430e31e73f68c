package main

import (
	"log"

	"dataid/cmd/did/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
