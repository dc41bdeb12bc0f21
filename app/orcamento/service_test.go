package orcamento

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/shopspring/decimal"
)

func lineFor(id, name string, modality models.Modality, qty int, price string) Line {
	p, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return Line{
		Product:   ProductSnapshot{ID: id, Name: name, Slug: id, Unit: "un"},
		Modality:  modality,
		Quantity:  qty,
		UnitPrice: p,
	}
}

func TestAddItemMergesSameKey(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 2, "10"))
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 3, "10"))
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))

	items := svc.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Errorf("expected merged quantity 6, got %d", items[0].Quantity)
	}
}

func TestAddItemSameProductDifferentModality(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityProntaEntrega, 1, "15"))

	if got := len(svc.Items()); got != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", got)
	}
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))

	// A later add of the same key carries a new catalog price; the existing
	// line keeps its add-time price.
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "99"))

	items := svc.Items()
	if !items[0].UnitPrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected add-time price 10 to stick, got %s", items[0].UnitPrice)
	}
}

func TestUpdateQuantityBelowOneIsNoop(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 2, "10"))

	svc.UpdateQuantity("p1", models.ModalityFabrica, 0)
	svc.UpdateQuantity("p1", models.ModalityFabrica, -5)

	if got := svc.Items()[0].Quantity; got != 2 {
		t.Errorf("expected quantity to stay 2, got %d", got)
	}
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	svc.UpdateQuantity("ghost", models.ModalityFabrica, 3)
	if got := len(svc.Items()); got != 0 {
		t.Errorf("expected empty cart, got %d lines", got)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))

	svc.RemoveItem("p1", models.ModalityFabrica)
	svc.RemoveItem("p1", models.ModalityFabrica)

	if got := len(svc.Items()); got != 0 {
		t.Errorf("expected empty cart after remove, got %d lines", got)
	}
}

func TestClear(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))
	svc.AddItem(lineFor("p2", "Areia", models.ModalityFabrica, 1, "5"))

	svc.Clear()

	if got := len(svc.Items()); got != 0 {
		t.Errorf("expected empty cart after clear, got %d lines", got)
	}
	if !svc.Total().IsZero() {
		t.Errorf("expected zero total after clear, got %s", svc.Total())
	}
}

func TestDualModalityScenario(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	svc.AddItem(lineFor("a", "Produto A", models.ModalityFabrica, 2, "10"))
	if got := svc.Total(); !got.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("after first add expected total 20, got %s", got)
	}

	svc.AddItem(lineFor("a", "Produto A", models.ModalityProntaEntrega, 1, "15"))
	if got := len(svc.Items()); got != 2 {
		t.Fatalf("expected two distinct lines, got %d", got)
	}
	if got := svc.Total(); !got.Equal(decimal.NewFromInt(35)) {
		t.Fatalf("expected total 35, got %s", got)
	}

	svc.UpdateQuantity("a", models.ModalityFabrica, 3)
	if got := svc.Total(); !got.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected total 45, got %s", got)
	}

	svc.RemoveItem("a", models.ModalityProntaEntrega)
	if got := svc.Total(); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected total 30, got %s", got)
	}

	if got := svc.TotalItemCount(); got != 3 {
		t.Errorf("expected item count 3, got %d", got)
	}
}

func TestCorruptPriceCoercesToZero(t *testing.T) {
	raw := []byte(`[
		{"product":{"id":"p1","name":"Cimento"},"modality":"fabrica","quantity":2,"unit_price":"not-a-number"},
		{"product":{"id":"p2","name":"Areia"},"modality":"fabrica","quantity":1},
		{"product":{"id":"p3","name":"Brita"},"modality":"fabrica","quantity":3,"unit_price":"7.50"}
	]`)

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !lines[0].UnitPrice.IsZero() {
		t.Errorf("non-numeric price should coerce to 0, got %s", lines[0].UnitPrice)
	}
	if !lines[1].UnitPrice.IsZero() {
		t.Errorf("missing price should coerce to 0, got %s", lines[1].UnitPrice)
	}
	if !lines[2].UnitPrice.Equal(decimal.RequireFromString("7.50")) {
		t.Errorf("valid price should survive, got %s", lines[2].UnitPrice)
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	if !total.Equal(decimal.RequireFromString("22.50")) {
		t.Errorf("expected total 22.50 with corrupt lines zeroed, got %s", total)
	}
}

func TestFileStorageRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir, "cart-1")

	svc := NewService(storage)
	svc.AddItem(lineFor("p3", "Brita", models.ModalityFabrica, 1, "7"))
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityProntaEntrega, 2, "15"))
	svc.AddItem(lineFor("p2", "Areia", models.ModalityFabrica, 4, "5"))

	reloaded := NewService(NewFileStorage(dir, "cart-1"))
	items := reloaded.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 lines after reload, got %d", len(items))
	}
	wantOrder := []string{"p3", "p1", "p2"}
	for i, want := range wantOrder {
		if items[i].Product.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, items[i].Product.ID)
		}
	}
	if !reloaded.Total().Equal(svc.Total()) {
		t.Errorf("total changed across reload: %s vs %s", reloaded.Total(), svc.Total())
	}
}

func TestCorruptFileDegradesToEmptyCart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart-x.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(NewFileStorage(dir, "cart-x"))
	if got := len(svc.Items()); got != 0 {
		t.Fatalf("expected empty cart from corrupt file, got %d lines", got)
	}

	// The cart stays usable after the bad load.
	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))
	if got := len(svc.Items()); got != 1 {
		t.Errorf("expected cart to accept items after corrupt load, got %d", got)
	}
}

func TestSubscribeNotify(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	notified := 0
	unsubscribe := svc.Subscribe(func() { notified++ })

	svc.AddItem(lineFor("p1", "Cimento", models.ModalityFabrica, 1, "10"))
	svc.UpdateQuantity("p1", models.ModalityFabrica, 2)
	svc.RemoveItem("p1", models.ModalityFabrica)
	svc.Clear()

	if notified != 4 {
		t.Errorf("expected 4 notifications, got %d", notified)
	}

	// No-ops do not notify.
	before := notified
	svc.UpdateQuantity("ghost", models.ModalityFabrica, 2)
	svc.RemoveItem("ghost", models.ModalityFabrica)
	if notified != before {
		t.Errorf("no-op mutations should not notify, got %d extra", notified-before)
	}

	unsubscribe()
	svc.AddItem(lineFor("p2", "Areia", models.ModalityFabrica, 1, "5"))
	if notified != before {
		t.Errorf("unsubscribed callback still fired")
	}
}

func TestRegistryReturnsSameServicePerCart(t *testing.T) {
	reg := NewRegistry("")

	a := reg.Get("cart-a")
	b := reg.Get("cart-a")
	c := reg.Get("cart-b")

	if a != b {
		t.Errorf("expected same service for same cart id")
	}
	if a == c {
		t.Errorf("expected distinct services for distinct cart ids")
	}
}
