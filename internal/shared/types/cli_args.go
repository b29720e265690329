package types

// CLIArgs represents the parsed command-line arguments for a single run.
type CLIArgs struct {
	ConfigPath   string
	TemplatePath string
	Pattern      string
	Region       string
	StartTime    string
	EndTime      string
	Period       string
	Title        string
	OutputPath   string
	SessionName  string
	AlarmOutput  string
	ReportName   string
	ReportType   []string
	Dir          string
}
