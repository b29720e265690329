package entity

// WidgetRequest carries everything needed to render and download one metric
// widget image for one account.
type WidgetRequest struct {
	Title        string
	Namespace    string
	Region       string
	RoleARN      string
	TemplatePath string
	Start        string
	End          string
	Period       string
}
