package main

import (
	_ "time/tzdata"

	"github.com/inovacc/clockr/cmd"
)

func main() {
	cmd.Execute()
}
