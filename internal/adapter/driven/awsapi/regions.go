package awsapi

// DefaultRegion is used when an inventory entry carries a region this tool
// does not recognize. Falling back keeps a typo in one account from aborting
// a whole multi-account run.
const DefaultRegion = "us-west-2"

var canonicalRegions = map[string]struct{}{
	"us-east-1":      {},
	"us-east-2":      {},
	"us-west-1":      {},
	"us-west-2":      {},
	"eu-west-1":      {},
	"eu-central-1":   {},
	"ap-southeast-1": {},
	"ap-northeast-1": {},
}

// ResolveRegion maps a free-form region string onto the canonical region set.
// Known regions map to themselves; anything else resolves to DefaultRegion.
func ResolveRegion(region string) string {
	if _, ok := canonicalRegions[region]; ok {
		return region
	}
	return DefaultRegion
}
