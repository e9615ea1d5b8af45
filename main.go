package main

import (
	"os"

	"github.com/jfrog/publish-info-go/cli"
	"github.com/jfrog/publish-info-go/utils"
	clitool "github.com/urfave/cli/v2"
)

var log utils.Log

func main() {
	log = utils.NewDefaultLogger(getCliLogLevel())
	app := &clitool.App{
		Name:     "Publish-Info CLI",
		Usage:    "inspect and validate publishing configurations",
		Commands: cli.GetCommands(log),
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getCliLogLevel() utils.LevelType {
	switch os.Getenv("PUBLISH_INFO_LOG_LEVEL") {
	case "ERROR":
		return utils.ERROR
	case "WARN":
		return utils.WARN
	case "DEBUG":
		return utils.DEBUG
	default:
		return utils.INFO
	}
}
