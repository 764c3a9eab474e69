package main

import "github.com/angulartv/regisstros/internal/cli"

func main() {
	cli.Execute()
}
