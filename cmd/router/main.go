package main

import (
	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/command"
)

func main() {
	command.Execute()
}
