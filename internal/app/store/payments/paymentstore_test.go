package paymentstore_test

import (
	"testing"
	"time"

	paymentstore "github.com/dalemusser/forumhub/internal/app/store/payments"
	"github.com/dalemusser/forumhub/internal/domain/models"
	"github.com/dalemusser/forumhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Insert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := paymentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	payment := models.Payment{
		Email:         "Alice@Example.com",
		Amount:        25,
		TransactionID: "pi_123_secret",
		PaymentMethod: []string{"card"},
		Type:          "membership",
	}

	created, err := store.Insert(ctx, payment)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "alice@example.com" {
		t.Errorf("Email: got %q, want normalized %q", created.Email, "alice@example.com")
	}
	if created.Date.IsZero() {
		t.Error("expected Date to be set")
	}
}

func TestStore_Insert_AppendsDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := paymentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	payment := models.Payment{
		Email:         "alice@example.com",
		Amount:        25,
		TransactionID: "pi_same",
		Type:          "membership",
	}

	for i := 0; i < 2; i++ {
		if _, err := store.Insert(ctx, payment); err != nil {
			t.Fatalf("Insert #%d failed: %v", i+1, err)
		}
	}

	all, err := store.ListByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 payment records, got %d", len(all))
	}
}

func TestStore_ListByEmail_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := paymentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, txn := range []string{"oldest", "middle", "newest"} {
		payment := models.Payment{
			Email:         "alice@example.com",
			Amount:        10,
			TransactionID: txn,
			Type:          "membership",
			Date:          base.Add(time.Duration(i) * time.Hour),
		}
		if _, err := store.Insert(ctx, payment); err != nil {
			t.Fatalf("Insert(%q) failed: %v", txn, err)
		}
	}

	payments, err := store.ListByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	if len(payments) != len(want) {
		t.Fatalf("expected %d payments, got %d", len(want), len(payments))
	}
	for i, txn := range want {
		if payments[i].TransactionID != txn {
			t.Errorf("payments[%d].TransactionID: got %q, want %q", i, payments[i].TransactionID, txn)
		}
	}
}

func TestStore_ListByEmail_FiltersOthers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := paymentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, email := range []string{"alice@example.com", "bob@example.com", "alice@example.com"} {
		if _, err := store.Insert(ctx, models.Payment{Email: email, Amount: 5, Type: "membership"}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	payments, err := store.ListByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	for _, p := range payments {
		if p.Email != "alice@example.com" {
			t.Errorf("unexpected email %q", p.Email)
		}
	}
}

func TestStore_ListByEmail_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := paymentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	payments, err := store.ListByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	if payments == nil {
		t.Fatal("expected non-nil slice for empty result")
	}
	if len(payments) != 0 {
		t.Errorf("expected 0 payments, got %d", len(payments))
	}
}
