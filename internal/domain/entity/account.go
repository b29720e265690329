package entity

// AccountRecord describes one AWS account in the fleet inventory: a logical
// program namespace, the region its infrastructure runs in, and the IAM role
// to assume for access.
type AccountRecord struct {
	Namespace string `json:"namespace" yaml:"namespace" toml:"namespace"`
	Region    string `json:"region" yaml:"region" toml:"region"`
	RoleARN   string `json:"role_arn" yaml:"role_arn" toml:"role_arn"`
}

// Inventory is the ordered list of account records driving a run.
type Inventory struct {
	Accounts []AccountRecord `json:"account" yaml:"account" toml:"account"`
}
