package usecase

const (
	DefaultCommitCount = 5
	DefaultEventName   = "code_refactor_insight"
	DefaultUsername    = "codename Bot"

	JobName = "insight.process"

	StageCommits  = "github.commits"
	StageMetrics  = "sonar.measures"
	StageDispatch = "webhook.dispatch"
	StageMirror   = "telex.log"

	SummaryText = "Periodic report with key insights from GitHub and SonarCloud"

	HeaderCommits = "🚀 Recent Code Changes:"
	HeaderMetrics = "🔍 SonarCloud Analysis:"
)

// Setting labels that override the configured repository, matched case-insensitively.
var (
	LabelsOwner      = []string{"github_username", "github_owner", "owner"}
	LabelsRepo       = []string{"github_repo", "repo"}
	LabelsRepository = []string{"repository", "github_repository"}
	LabelsProjectKey = []string{"sonar_project_key", "project_key"}
)
