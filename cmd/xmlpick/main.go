package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/alanb33/xmlpick/cmd/xmlpick/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
