// Package model defines the value types shared across urlsub: submission
// results returned by the individual submitters and the aggregate report
// rendered at the end of a run.
package model
