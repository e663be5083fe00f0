package main

import (
	"os"

	"github.com/leonardinius/goarith/cmd"
)

func main() {
	app := cmd.NewArithApp()
	os.Exit(app.Main(os.Args[1:]))
}
