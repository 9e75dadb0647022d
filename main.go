package main

import (
	"github.com/notargets/gofv/cmd"
)

func main() {
	cmd.Execute()
}
