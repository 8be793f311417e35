package main

import (
	"github.com/mchmarny/pwdctl/pkg/cli"
)

func main() {
	cli.Execute()
}
