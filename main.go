package main

import (
	"github.com/sultanbank/teller/cmd"
	"github.com/sultanbank/teller/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
