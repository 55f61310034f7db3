package main

import "github.com/sabania/framesrv/internal/cli"

func main() {
	cli.Execute()
}
