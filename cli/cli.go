package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/jfrog/publish-info-go/entities"
	"github.com/jfrog/publish-info-go/publishing"
	"github.com/jfrog/publish-info-go/publishing/loader"
	"github.com/jfrog/publish-info-go/utils"
	"github.com/jfrog/publish-info-go/utils/cienv"
	"github.com/pkg/errors"
	clitool "github.com/urfave/cli/v2"
)

const (
	configFlag    = "config"
	formatFlag    = "format"
	ciBranchFlag  = "ci-branch"
	moduleFlag    = "module"
	cycloneDxXml  = "cyclonedx/xml"
	cycloneDxJson = "cyclonedx/json"
)

func GetCommands(logger utils.Log) []*clitool.Command {
	configFileFlag := &clitool.StringFlag{
		Name:     configFlag,
		Aliases:  []string{"c"},
		Usage:    "[Mandatory] Path to the publishing configuration file (.toml or .json).` `",
		Required: true,
	}

	return []*clitool.Command{
		{
			Name:      "base-version",
			Usage:     "Print the release version derived from a version string",
			UsageText: "pi base-version <version>",
			Action: func(context *clitool.Context) error {
				if context.NArg() != 1 {
					return errors.New("expected exactly one version argument")
				}
				baseVersion, err := publishing.BaseVersion(context.Args().First())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(context.App.Writer, baseVersion)
				return err
			},
		},
		{
			Name:      "describe",
			Usage:     "Print what a publishing configuration deploys",
			UsageText: "pi describe --config publishing.toml",
			Flags: []clitool.Flag{
				configFileFlag,
				&clitool.StringFlag{
					Name:  formatFlag,
					Usage: fmt.Sprintf("[Optional] Set to convert the publication to a different format. Supported values are '%s' and '%s'.` `", cycloneDxXml, cycloneDxJson),
				},
				&clitool.BoolFlag{
					Name:  ciBranchFlag,
					Usage: "[Default: false] Set to use the branch and revision reported by the CI system instead of the configured branch.` `",
				},
				&clitool.StringSliceFlag{
					Name:  moduleFlag,
					Usage: "[Optional] Wildcard pattern of group:artifact:version ids to include. May be repeated.` `",
				},
			},
			Action: func(context *clitool.Context) error {
				config, err := loader.LoadFile(context.String(configFlag), publishing.DefaultEnvironment(), logger)
				if err != nil {
					return err
				}
				var ciInfo cienv.CIVcsInfo
				if context.Bool(ciBranchFlag) {
					ciInfo = applyCiBranch(config, logger)
				}
				publication, err := config.Publication()
				if err != nil {
					return err
				}
				publication.Revision = ciInfo.Revision
				if err = publication.FilterMavenModules(context.StringSlice(moduleFlag)...); err != nil {
					return err
				}
				return printPublication(context.App.Writer, publication, context.String(formatFlag))
			},
		},
		{
			Name:      "validate",
			Usage:     "Check that a publishing configuration is complete",
			UsageText: "pi validate --config publishing.toml",
			Flags:     []clitool.Flag{configFileFlag},
			Action: func(context *clitool.Context) error {
				config, err := loader.LoadFile(context.String(configFlag), publishing.DefaultEnvironment(), logger)
				if err != nil {
					return err
				}
				return validate(context.App.Writer, config, logger)
			},
		},
	}
}

// applyCiBranch replaces the configured branch with the one reported by the CI system
// and returns what the CI system reported.
func applyCiBranch(config *publishing.PublishingConfig, logger utils.Log) cienv.CIVcsInfo {
	info := cienv.GetCIVcsInfo()
	if info.IsEmpty() {
		logger.Warn("No supported CI system detected, keeping branch " + config.Branch())
		return info
	}
	if info.Branch == "" {
		logger.Warn("No CI branch detected, keeping branch " + config.Branch())
		return info
	}
	logger.Debug(fmt.Sprintf("Using %s branch %s at revision %s instead of %s", info.Provider, info.Branch, info.Revision, config.Branch()))
	config.SetBranch(info.Branch)
	return info
}

func validate(writer io.Writer, config *publishing.PublishingConfig, logger utils.Log) error {
	report := config.Validate()
	for _, warning := range report.Warnings {
		logger.Warn(warning)
	}
	settingsFiles := []struct {
		kind string
		path string
	}{
		{"User Maven settings", config.UserMavenSettings()},
		{"Global Maven settings", config.GlobalMavenSettings()},
		{"Maven security", config.MavenSecurityFile()},
	}
	for _, file := range settingsFiles {
		if err := utils.CheckFileExists(file.kind, file.path); err != nil {
			logger.Warn(err.Error())
		}
	}
	if err := report.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer, "The publishing configuration is valid.")
	return err
}

func printPublication(writer io.Writer, publication *entities.Publication, format string) error {
	switch format {
	case cycloneDxXml:
		return encodeCycloneDx(writer, publication, cdx.BOMFileFormatXML)
	case cycloneDxJson:
		return encodeCycloneDx(writer, publication, cdx.BOMFileFormatJSON)
	case "":
		b, err := json.Marshal(publication)
		if err != nil {
			return err
		}
		var content bytes.Buffer
		err = json.Indent(&content, b, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(writer, content.String())
		return err
	default:
		return fmt.Errorf("'%s' is not a valid value for '%s'", format, formatFlag)
	}
}

func encodeCycloneDx(writer io.Writer, publication *entities.Publication, fileFormat cdx.BOMFileFormat) error {
	cdxBom, err := publication.ToCycloneDxBom()
	if err != nil {
		return err
	}
	encoder := cdx.NewBOMEncoder(writer, fileFormat)
	encoder.SetPretty(true)
	return encoder.Encode(cdxBom)
}
