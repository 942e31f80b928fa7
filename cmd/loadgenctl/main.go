package main

import (
	"github.com/loadgenproject/loadgenctl/cmd/loadgenctl/cmd"
	"github.com/loadgenproject/loadgenctl/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	cmd.Execute()
}
