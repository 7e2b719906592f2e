package main

import (
	"github.com/NVIDIA/ccversion/pkg/cli"
)

func main() {
	cli.Execute()
}
