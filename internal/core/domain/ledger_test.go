package domain

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ledgerSnapshot(balance, price int64) Snapshot {
	return Snapshot{
		Users: []User{
			{ID: "prof", Role: RoleProfessor, IsApproved: true},
			{ID: "stu", Role: RoleStudent, WalletBalance: balance},
			{ID: "other", Role: RoleStudent, WalletBalance: 300},
		},
		Channels: []Channel{
			{ID: "ch1", ProfessorID: "prof", Price: price, Subscribers: []string{}},
			{ID: "ch2", ProfessorID: "prof", Price: 0, Subscribers: []string{}},
		},
	}
}

func mustUser(t *testing.T, s Snapshot, id string) User {
	t.Helper()
	u, _, ok := s.FindUser(id)
	if !ok {
		t.Fatalf("user %q missing", id)
	}
	return u
}

func mustChannel(t *testing.T, s Snapshot, id string) Channel {
	t.Helper()
	c, _, ok := s.FindChannel(id)
	if !ok {
		t.Fatalf("channel %q missing", id)
	}
	return c
}

// ---------------------------------------------------------------------------
// Subscribe
// ---------------------------------------------------------------------------

func TestSubscribe_Success(t *testing.T) {
	before := ledgerSnapshot(500, 400)

	after, err := Subscribe(before, "stu", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mustUser(t, after, "stu").WalletBalance; got != 100 {
		t.Errorf("expected balance 100, got %d", got)
	}
	if !mustChannel(t, after, "ch1").HasSubscriber("stu") {
		t.Error("student must be in subscribers")
	}
	if got := mustUser(t, after, "prof").StudentCount; got != 1 {
		t.Errorf("expected studentCount 1, got %d", got)
	}

	// The input snapshot is untouched.
	if got := mustUser(t, before, "stu").WalletBalance; got != 500 {
		t.Errorf("original balance mutated: %d", got)
	}
	if len(mustChannel(t, before, "ch1").Subscribers) != 0 {
		t.Error("original subscribers mutated")
	}
	if mustUser(t, before, "prof").StudentCount != 0 {
		t.Error("original studentCount mutated")
	}
	if &before.Users[0] == &after.Users[0] {
		t.Error("snapshots share the users slice")
	}
}

func TestSubscribe_InsufficientFunds(t *testing.T) {
	before := ledgerSnapshot(100, 400)

	after, err := Subscribe(before, "stu", "ch1")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if mustUser(t, after, "stu").WalletBalance != 100 {
		t.Error("balance must be unchanged")
	}
	if len(mustChannel(t, after, "ch1").Subscribers) != 0 {
		t.Error("subscribers must be unchanged")
	}
	if mustUser(t, after, "prof").StudentCount != 0 {
		t.Error("studentCount must be unchanged")
	}
}

func TestSubscribe_ExactBalanceAllowed(t *testing.T) {
	after, err := Subscribe(ledgerSnapshot(400, 400), "stu", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mustUser(t, after, "stu").WalletBalance != 0 {
		t.Errorf("expected zero balance, got %d", mustUser(t, after, "stu").WalletBalance)
	}
}

func TestSubscribe_AlreadySubscribedDoesNotCharge(t *testing.T) {
	first, err := Subscribe(ledgerSnapshot(1000, 400), "stu", "ch1")
	if err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}

	second, err := Subscribe(first, "stu", "ch1")
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if mustUser(t, second, "stu").WalletBalance != 600 {
		t.Errorf("second attempt must not charge, balance %d", mustUser(t, second, "stu").WalletBalance)
	}
	if n := len(mustChannel(t, second, "ch1").Subscribers); n != 1 {
		t.Errorf("expected 1 subscriber, got %d", n)
	}
	if mustUser(t, second, "prof").StudentCount != 1 {
		t.Error("studentCount must not move on a rejected subscribe")
	}
}

// StudentCount is an event counter: the same student joining two channels of
// one professor counts twice.
func TestSubscribe_StudentCountCountsSubscriptionEvents(t *testing.T) {
	s := ledgerSnapshot(1000, 400)

	s, err := Subscribe(s, "stu", "ch1")
	if err != nil {
		t.Fatalf("subscribe ch1: %v", err)
	}
	s, err = Subscribe(s, "stu", "ch2")
	if err != nil {
		t.Fatalf("subscribe ch2: %v", err)
	}

	if got := mustUser(t, s, "prof").StudentCount; got != 2 {
		t.Fatalf("expected event-counted studentCount 2, got %d", got)
	}
}

func TestSubscribe_InvalidArguments(t *testing.T) {
	s := ledgerSnapshot(1000, 400)

	cases := map[string]struct {
		student, channel string
	}{
		"unknown student":  {"ghost", "ch1"},
		"professor caller": {"prof", "ch1"},
		"unknown channel":  {"stu", "nope"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Subscribe(s, tc.student, tc.channel); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}

	s.Channels[0].Price = -1
	if _, err := Subscribe(s, "stu", "ch1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative price: expected ErrInvalidArgument, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Recharge
// ---------------------------------------------------------------------------

func TestRecharge_Success(t *testing.T) {
	before := ledgerSnapshot(1200, 400)

	after, err := Recharge(before, "stu", DefaultRechargeAmount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustUser(t, after, "stu").WalletBalance; got != 6200 {
		t.Errorf("expected 6200, got %d", got)
	}
	if got := mustUser(t, after, "other").WalletBalance; got != 300 {
		t.Errorf("other student's balance changed: %d", got)
	}
	if got := mustUser(t, before, "stu").WalletBalance; got != 1200 {
		t.Errorf("original snapshot mutated: %d", got)
	}
}

func TestRecharge_Rejects(t *testing.T) {
	s := ledgerSnapshot(0, 400)

	if _, err := Recharge(s, "prof", 100); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("professor recharge: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Recharge(s, "ghost", 100); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown user: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Recharge(s, "stu", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero amount: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Recharge(s, "stu", -5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative amount: expected ErrInvalidArgument, got %v", err)
	}
}
