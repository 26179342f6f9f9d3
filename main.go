package main

import (
	"github.com/hance08/tailorbook/cmd"
	"github.com/hance08/tailorbook/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
