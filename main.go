package main

import (
	cmd "github.com/Hemachandra9899/Bacckend/cmd/secondbrain"
	"github.com/Hemachandra9899/Bacckend/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting secondbrain")
	cmd.Execute()
}
