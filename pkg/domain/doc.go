package domain

// domain package contains the Domain Models and Interfaces for the Torii application.
//
// `domain/torii` package exposes the root object for the Torii application.
// Entrypoints of applications should instantiate the Torii object and use it to interact with the domain.
//
// `domain/ENTITY.go` has high-level entities (Domain Model types) and functions.
// For example, `domain/experiment.go` contains the `Experiment` entity.
//
// `domain/ENTITY` directory contains the "physical" representation of the domain entities in the RDB.
// For example, `domain/experiment/db` declares the database interface of the experiment entity
// described in `domain/experiment.go`, and `domain/experiment/db/postgres` implements it.
//
// `domain/ENTITY/interface.go` exposes the client interface to handle the domain entity in DB.
//
// # Entities
//
// Core entities in the domain are:
//
// - `worker`: A machine which runs trials. Workers are registered with a static
// hardware description (cpu, memory, gpus) and identified by their unique name.
// Re-registering a known name returns the stored identity unchanged.
//
// - `metric`: A named, directional measurable quantity. Each name is bound to
// exactly one mode ("max" or "min") for the lifetime of the system; the mode is
// either requested explicitly or inferred from the name.
//
// - `experiment`: A parameterized unit of comparable work, identified by
// (group, identifier, hyper parameters). Experiments accumulate metrics
// monotonically and carry a trial quota bounding concurrent attempts.
//
// - `trial`: One execution attempt of an experiment by a worker. Admission is
// quota-checked; a full experiment hands the worker its oldest incomplete trial
// back instead of a new one.
//
// - `result`: Values a trial reported for a metric, keyed by step. Reporting the
// same (trial, metric, step) again overwrites the value. The read model derived
// from results is the per-(trial, metric) series consumed by dashboards.
