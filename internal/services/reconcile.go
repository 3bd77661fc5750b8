package services

import (
	"errors"
	"fmt"

	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/ports"
)

// ErrKeyMismatch reports a cargoKey that appears on only one side of the
// submission/result join. The carrier contract promises one result per
// submitted order, so a mismatch is a protocol violation, not something
// to drop silently.
var ErrKeyMismatch = errors.New("cargo key mismatch between submissions and carrier results")

// ReconciledBatch is the final shape of a successful create call: the
// carrier's batch-level values plus the submitted items partitioned by
// per-item outcome.
type ReconciledBatch struct {
	OutFlag    string
	Count      int
	JobID      string
	Successful []map[string]any
	Failed     []map[string]any
}

// Reconcile joins the submitted orders with the carrier's per-item
// results by cargoKey and partitions them. Absent markers are stripped to
// empty strings first so the items serialize cleanly; items without an
// error code get a rendered label, items with one get the carrier's
// errCode and errMessage copied on.
//
// Reconcile assumes the batch itself succeeded; the caller handles a
// non-zero outFlag before ever getting here.
func Reconcile(submitted []*domain.FieldSet, res ports.CreateResult, labels *LabelGenerator) (*ReconciledBatch, error) {
	itemsByKey := make(map[string]map[string]any, len(submitted))
	for i, fs := range submitted {
		key := fs.Get(domain.FieldCargoKey)
		if !key.Present {
			return nil, fmt.Errorf("reconcile: submitted order %d has no cargoKey", i)
		}

		item := make(map[string]any, fs.Len())
		for _, name := range fs.Names() {
			f := fs.Get(name)
			if f.Present {
				item[name] = f.Value
			} else {
				item[name] = ""
			}
		}
		itemsByKey[key.Value] = item
	}

	out := &ReconciledBatch{
		OutFlag:    res.OutFlag,
		Count:      res.Count,
		JobID:      res.JobID,
		Successful: []map[string]any{},
		Failed:     []map[string]any{},
	}

	matched := make(map[string]struct{}, len(res.Shipments))
	for _, r := range res.Shipments {
		item, ok := itemsByKey[r.CargoKey]
		if !ok {
			return nil, fmt.Errorf("reconcile: carrier returned unknown cargoKey %q: %w", r.CargoKey, ErrKeyMismatch)
		}
		matched[r.CargoKey] = struct{}{}

		if r.ErrCode == nil {
			label, err := labels.Render(item, res.JobID)
			if err != nil {
				return nil, fmt.Errorf("reconcile: cargoKey %q: %w", r.CargoKey, err)
			}
			item["label"] = label
			out.Successful = append(out.Successful, item)
			continue
		}

		item["errCode"] = *r.ErrCode
		item["errMessage"] = r.ErrMessage
		out.Failed = append(out.Failed, item)
	}

	if len(matched) != len(itemsByKey) {
		for key := range itemsByKey {
			if _, ok := matched[key]; !ok {
				return nil, fmt.Errorf("reconcile: no carrier result for cargoKey %q: %w", key, ErrKeyMismatch)
			}
		}
	}

	return out, nil
}
