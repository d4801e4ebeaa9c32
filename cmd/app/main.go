package main

import (
	"os"

	"github.com/Dipanshu93198/DRS/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
