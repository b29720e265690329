package entity

// MetricDescriptor describes one published CloudWatch metric.
type MetricDescriptor struct {
	Namespace  string            `json:"namespace"`
	Name       string            `json:"name"`
	Dimensions []MetricDimension `json:"dimensions"`
}

// MetricDimension is a single name/value dimension of a metric.
type MetricDimension struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
