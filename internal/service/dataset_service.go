package service

import (
	"context"
	"fmt"
	"math/rand"

	"ipmap-dashboard/internal/models"
)

// RecordRepository interface for dependency injection
type RecordRepository interface {
	LoadRecords(ctx context.Context) ([]models.Record, int, error)
}

// Snapshot is one fully labeled load of the dataset: the records in load
// order, the three per-group views and the count of rows dropped during
// coordinate coercion. Built once per process, read-only afterwards.
type Snapshot struct {
	Records []models.Record
	Views   []models.CategoryView
	Dropped int
}

// DatasetService loads the dataset and derives the labeled snapshot
type DatasetService struct {
	repo RecordRepository
	rng  *rand.Rand
}

// NewDatasetService creates a dataset service. The random source drives the
// group assignment; callers own its seeding.
func NewDatasetService(repo RecordRepository, rng *rand.Rand) *DatasetService {
	return &DatasetService{repo: repo, rng: rng}
}

// LoadLabeled runs the one-shot pipeline: load, assign groups, partition.
func (s *DatasetService) LoadLabeled(ctx context.Context) (*Snapshot, error) {
	records, dropped, err := s.repo.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load dataset: %w", err)
	}

	AssignGroups(records, s.rng)

	return &Snapshot{
		Records: records,
		Views:   Partition(records),
		Dropped: dropped,
	}, nil
}

// AssignGroups gives every record exactly one group label, sampled uniformly
// and independently from the fixed label set. Counts across groups are not
// balanced. This is the only mutation a record ever sees after load.
func AssignGroups(records []models.Record, rng *rand.Rand) {
	for i := range records {
		records[i].Group = models.GroupLabels[rng.Intn(len(models.GroupLabels))]
	}
}

// Partition splits a labeled record set into one view per group label, in
// fixed label order. Views are disjoint and together cover the input; a view
// with no records stays empty rather than nil-slicing downstream.
func Partition(records []models.Record) []models.CategoryView {
	views := make([]models.CategoryView, len(models.GroupLabels))
	index := make(map[string]int, len(models.GroupLabels))
	for i, label := range models.GroupLabels {
		views[i] = models.CategoryView{Label: label, Records: []models.Record{}}
		index[label] = i
	}
	for _, r := range records {
		i := index[r.Group]
		views[i].Records = append(views[i].Records, r)
	}
	return views
}
