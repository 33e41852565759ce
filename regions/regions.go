package regions

import "github.com/aws/aws-sdk-go/aws/endpoints"

// IsRegion reports whether region is a commercial-partition AWS region this
// SDK knows about. Newer regions may be missing, so treat false as a warning.
func IsRegion(region string) bool {
	_, ok := all()[region]
	return ok
}

func all() map[string]endpoints.Region {
	return endpoints.AwsPartition().Regions()
}
