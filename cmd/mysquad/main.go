package main

import (
	"github.com/mcoot/mysquad-go/internal/cli"
)

func main() {
	cli.Execute()
}
