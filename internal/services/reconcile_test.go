package services

import (
	"errors"
	"testing"

	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/ports"
)

func submittedOrder(cargoKey string) *domain.FieldSet {
	fs := domain.NewFieldSet()
	fs.Put(domain.FieldCargoKey, domain.Val(cargoKey))
	fs.Put(domain.FieldReceiverCustName, domain.Val("Ayşe Yılmaz"))
	fs.Put(domain.FieldReceiverAddress, domain.Val("Moda Cad. No:1"))
	fs.Put(domain.FieldCityName, domain.Val("İstanbul"))
	fs.Put(domain.FieldTownName, domain.Val("Kadıköy"))
	fs.Put(domain.FieldReceiverPhone1, domain.Val("5551234567"))
	fs.Put(domain.FieldReceiverPhone2, domain.Absent)
	fs.Put(domain.FieldDescription, domain.Val("kitap"))
	fs.Put(domain.FieldWaybillNo, domain.Val("WB-1"))
	fs.Put(domain.FieldEmailAddress, domain.Absent)
	return fs
}

func intp(n int) *int { return &n }

func TestReconcileSuccessfulItem(t *testing.T) {
	res := ports.CreateResult{
		OutFlag: "0",
		Count:   1,
		JobID:   "900123",
		Shipments: []ports.ShipmentResult{
			{CargoKey: "A1", ErrCode: nil},
		},
	}

	batch, err := Reconcile([]*domain.FieldSet{submittedOrder("A1")}, res, testGenerator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Successful) != 1 {
		t.Fatalf("successful = %d, want 1", len(batch.Successful))
	}
	if len(batch.Failed) != 0 {
		t.Fatalf("failed = %d, want 0", len(batch.Failed))
	}

	item := batch.Successful[0]

	label, ok := item["label"].(string)
	if !ok || label == "" {
		t.Fatalf("label = %v, want a non-empty string", item["label"])
	}

	// Absent markers are stripped to empty strings for serialization.
	if got, ok := item["emailAddress"].(string); !ok || got != "" {
		t.Fatalf("emailAddress = %v, want empty string", item["emailAddress"])
	}

	if batch.JobID != "900123" || batch.Count != 1 || batch.OutFlag != "0" {
		t.Fatalf("batch header = %+v", batch)
	}
}

func TestReconcileFailedItem(t *testing.T) {
	res := ports.CreateResult{
		OutFlag: "0",
		Count:   2,
		JobID:   "900124",
		Shipments: []ports.ShipmentResult{
			{CargoKey: "A1", ErrCode: nil},
			{CargoKey: "B2", ErrCode: intp(80859), ErrMessage: "Kargo anahtarı bulunamadı"},
		},
	}

	submitted := []*domain.FieldSet{submittedOrder("A1"), submittedOrder("B2")}

	batch, err := Reconcile(submitted, res, testGenerator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Successful) != 1 {
		t.Fatalf("successful = %d, want 1", len(batch.Successful))
	}
	if len(batch.Failed) != 1 {
		t.Fatalf("failed = %d, want 1", len(batch.Failed))
	}

	failed := batch.Failed[0]
	if failed["errCode"] != 80859 {
		t.Fatalf("errCode = %v, want 80859", failed["errCode"])
	}
	if failed["errMessage"] != "Kargo anahtarı bulunamadı" {
		t.Fatalf("errMessage = %v", failed["errMessage"])
	}
	if _, ok := failed["label"]; ok {
		t.Fatal("failed item should not carry a label")
	}
}

func TestReconcileUnknownCarrierKey(t *testing.T) {
	res := ports.CreateResult{
		OutFlag:   "0",
		Count:     1,
		JobID:     "1",
		Shipments: []ports.ShipmentResult{{CargoKey: "GHOST"}},
	}

	_, err := Reconcile([]*domain.FieldSet{submittedOrder("A1")}, res, testGenerator())
	if !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("err = %v, want ErrKeyMismatch", err)
	}
}

func TestReconcileMissingCarrierResult(t *testing.T) {
	res := ports.CreateResult{
		OutFlag:   "0",
		Count:     2,
		JobID:     "1",
		Shipments: []ports.ShipmentResult{{CargoKey: "A1"}},
	}

	submitted := []*domain.FieldSet{submittedOrder("A1"), submittedOrder("B2")}

	_, err := Reconcile(submitted, res, testGenerator())
	if !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("err = %v, want ErrKeyMismatch", err)
	}
}

func TestReconcileSubmissionWithoutCargoKey(t *testing.T) {
	fs := domain.NewFieldSet()
	fs.Put(domain.FieldCargoKey, domain.Absent)

	_, err := Reconcile([]*domain.FieldSet{fs}, ports.CreateResult{OutFlag: "0"}, testGenerator())
	if err == nil {
		t.Fatal("expected an error for a submission without a cargoKey")
	}
}
