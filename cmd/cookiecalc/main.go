package main

import "github.com/aalvaropc/cookiecalc/internal/cli"

func main() {
	cli.Execute()
}
