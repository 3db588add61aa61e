package main

import (
	"github.com/Vilsol/hexd/cmd"
)

func main() {
	cmd.Execute()
}
