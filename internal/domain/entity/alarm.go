package entity

// AlarmRecord is the flattened, serializable form of a CloudWatch metric
// alarm, tagged with the program namespace of the account it came from.
type AlarmRecord struct {
	ProgramName        string   `json:"program_name"`
	AlarmName          string   `json:"alarm_name"`
	AlarmARN           string   `json:"alarm_arn"`
	AlarmDescription   string   `json:"alarm_description"`
	Dimensions         []string `json:"dimensions"`
	ActionsEnabled     bool     `json:"actions_enabled"`
	Period             int32    `json:"period"`
	Threshold          float64  `json:"threshold"`
	ComparisonOperator string   `json:"comparison_operator"`
	TreatMissingData   string   `json:"treat_missing_data"`
	Statistic          string   `json:"statistic"`
}
