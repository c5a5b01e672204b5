package main

import (
	"github.com/replicatedhq/dirload/pkg/cli"
)

func main() {
	cli.Execute()
}
