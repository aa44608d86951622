package workers

import (
	"github.com/torii-ml/torii-api-types/internal/utils/cmp"
	"github.com/torii-ml/torii-api-types/misc/rfctime"
)

type GPU struct {
	Name string `json:"name"`

	// device memory in GiB.
	Memory float64 `json:"memory"`
}

// WorkerSpec is a request to find-or-create a worker identity.
type WorkerSpec struct {
	Name     string  `json:"name"`
	CpuBrand string  `json:"cpu,omitempty"`
	Memory   float64 `json:"memory,omitempty"`
	GPUs     []GPU   `json:"gpus,omitempty"`
}

func (s WorkerSpec) Equal(o WorkerSpec) bool {
	return s.Name == o.Name &&
		s.CpuBrand == o.CpuBrand &&
		s.Memory == o.Memory &&
		cmp.SliceEqual(s.GPUs, o.GPUs)
}

type Detail struct {
	Id        int             `json:"id"`
	Name      string          `json:"name"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	Active    bool            `json:"active"`
	CpuBrand  string          `json:"cpu,omitempty"`
	Memory    float64         `json:"memory,omitempty"`
	GPUs      []GPU           `json:"gpus"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.Active == o.Active &&
		d.CpuBrand == o.CpuBrand &&
		d.Memory == o.Memory &&
		cmp.SliceEqual(d.GPUs, o.GPUs)
}

// SetActive is the body of the worker activation endpoint.
type SetActive struct {
	Active bool `json:"active"`
}
