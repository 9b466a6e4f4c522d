package main

import (
	"log"

	"github.com/timada-org/todos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
