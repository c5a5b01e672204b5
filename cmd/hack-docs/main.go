package main

import (
	"fmt"

	"github.com/mcuadros/go-jsonschema-generator"
	"github.com/replicatedhq/dirload/pkg/config"
)

func main() {
	s := &jsonschema.Document{}
	s.Read(&config.File{})
	fmt.Println(s)
}
