package main

import "github.com/dennisxing/garden/internal/cli"

func main() {
	cli.Execute()
}
