package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fleetwatch/cw-fleet/pkg/version"
)

// displayWelcomeBanner prints the banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$  /$$      /$$       /$$$$$$$$ /$$                      /$$
        /$$__  $$| $$  /$ | $$      | $$_____/| $$                     | $$
       | $$  \__/| $$ /$$$| $$      | $$      | $$  /$$$$$$   /$$$$$$  /$$$$$$
       | $$      | $$/$$ $$ $$      | $$$$$   | $$ /$$__  $$ /$$__  $$|_  $$_/
       | $$      | $$$$_  $$$$      | $$__/   | $$| $$$$$$$$| $$$$$$$$  | $$
       | $$    $$| $$$/ \  $$$      | $$      | $$| $$_____/| $$_____/  | $$ /$$
       |  $$$$$$/| $$/   \  $$      | $$      | $$|  $$$$$$$|  $$$$$$$  |  $$$$/
        \______/ |__/     \__/      |__/      |__/ \_______/ \_______/   \___/
       `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("CloudWatch Fleet CLI (v%s)", formattedVersion)))
}
