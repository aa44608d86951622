package domain

import (
	"time"
)

// GPU is one GPU device attached to a Worker.
//
// The core does not interpret these values; they are reported by the
// worker process on registration and echoed back to readers.
type GPU struct {
	Name   string  `json:"name"`
	Memory float64 `json:"memory"`
}

// static GPU descriptor of a Worker.
type GPUDescriptor struct {
	GPUs []GPU `json:"gpus"`
}

func (g GPUDescriptor) Equal(o GPUDescriptor) bool {
	if len(g.GPUs) != len(o.GPUs) {
		return false
	}
	for i := range g.GPUs {
		if g.GPUs[i] != o.GPUs[i] {
			return false
		}
	}
	return true
}

// Worker is a registered compute host/process identity which runs Trials.
//
// Identity is the unique Name. Workers are never deleted by the core;
// a teardown hook may mark one inactive.
type Worker struct {
	Id        int
	Name      string
	CreatedAt time.Time
	Active    bool
	CpuBrand  string

	// total memory in GiB.
	Memory float64

	GPUs GPUDescriptor
}

func (w Worker) Equal(o Worker) bool {
	return w.Id == o.Id &&
		w.Name == o.Name &&
		w.CreatedAt.Equal(o.CreatedAt) &&
		w.Active == o.Active &&
		w.CpuBrand == o.CpuBrand &&
		w.Memory == o.Memory &&
		w.GPUs.Equal(o.GPUs)
}

// WorkerSpec is a request to find-or-create a Worker.
type WorkerSpec struct {
	Name     string
	CpuBrand string
	Memory   float64
	GPUs     GPUDescriptor
}

func (s WorkerSpec) Validate() error {
	if s.Name == "" {
		return NewInvalidSpec("worker name is required")
	}
	return nil
}
