package main

import (
	"github.com/NVIDIA/verbump/pkg/cli"
)

func main() {
	cli.Execute()
}
