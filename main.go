package main

import (
	"log"

	"github.com/structgen/go-struct-accessors/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
