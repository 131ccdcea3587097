package integration

import (
	"strings"

	"code-refactor-insight/internal/model"
)

const (
	AppName         = "Code Refactor Insight"
	AppDescription  = "Provides periodic reports on code quality and recent changes by combining GitHub commit history with SonarCloud static analysis."
	AppLogo         = "https://res.cloudinary.com/drujauolr/image/upload/v1740249649/942a2999-c065-47b3-adb0-3222599294eb_rsoloz.jpg"
	BackgroundColor = "#f0f0f0"
	Author          = "codename"

	TypeInterval    = "interval"
	CategoryMonitor = "Monitoring & Logging"
	DateCreated     = "2025-02-22"
	DateUpdated     = "2025-02-22"
	DefaultInterval = "* * * * *"
	tickPath        = "/tick"
)

var keyFeatures = []string{
	"Fetches the latest commits from a GitHub repository",
	"Retrieves code smells, bugs and vulnerabilities from SonarCloud",
	"Combines both sources into a single readable report",
	"Delivers the report to the channel on every interval",
	"Degrades gracefully when one of the sources is unavailable",
}

// Build returns the document for a service reachable at appURL.
func Build(appURL, defaultOwner, defaultRepo string) Document {
	appURL = strings.TrimRight(appURL, "/")

	return Document{Data: Data{
		Date: Date{
			CreatedAt: DateCreated,
			UpdatedAt: DateUpdated,
		},
		Descriptions: Descriptions{
			AppName:         AppName,
			AppDescription:  AppDescription,
			AppLogo:         AppLogo,
			AppURL:          appURL,
			BackgroundColor: BackgroundColor,
		},
		IsActive:            true,
		IntegrationType:     TypeInterval,
		IntegrationCategory: CategoryMonitor,
		KeyFeatures:         keyFeatures,
		Author:              Author,
		Settings: []model.Setting{
			{Label: "interval", Type: "text", Required: true, Default: DefaultInterval},
			{Label: "github_username", Type: "text", Required: false, Default: defaultOwner},
			{Label: "github_repo", Type: "text", Required: false, Default: defaultRepo},
		},
		TargetURL: "",
		TickURL:   appURL + tickPath,
	}}
}
