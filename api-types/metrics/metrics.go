package metrics

// Mode expression on the wire.
//
// "max" and "min" are explicit; "" and "auto" leave the mode to be
// inferred from the metric name.
type Mode string

const (
	Auto Mode = "auto"
	Max  Mode = "max"
	Min  Mode = "min"
)

// MetricSpec is a request to find-or-create a metric.
type MetricSpec struct {
	Name string `json:"name"`
	Mode Mode   `json:"mode,omitempty"`
}

func (s MetricSpec) Equal(o MetricSpec) bool {
	return s.Name == o.Name && s.Mode == o.Mode
}

type Detail struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Mode Mode   `json:"mode"`
}

func (d Detail) Equal(o Detail) bool {
	return d == o
}
