package reflectscan

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jonwraymond/goinspect/member"
)

type account struct {
	Balance int
	Owner   string
	OnClose func() error
	hidden  bool
}

func (account) Deposit(n int) {}

func (*account) Drain() error { return nil }

func memberByName(t *testing.T, list []member.Member, name string) member.Member {
	t.Helper()
	for _, m := range list {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("member %q not found in %v", name, list)
	return member.Member{}
}

func TestScanStruct(t *testing.T) {
	v, err := Scan(account{Balance: 42, Owner: "amy"})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if got := v.TypeName(); got != "reflectscan.account" {
		t.Errorf("TypeName() = %q", got)
	}
	if v.IsContainer() {
		t.Error("IsContainer() = true, want false")
	}
	if v.Name() != "" || v.Doc() != "" {
		t.Error("live values must not invent a name or doc")
	}

	members := v.Members()

	deposit := memberByName(t, members, "Deposit")
	if deposit.Kind != member.KindCallable {
		t.Errorf("Deposit kind = %v, want callable", deposit.Kind)
	}
	if deposit.TypeName != "func(int)" {
		t.Errorf("Deposit type = %q, want bound signature", deposit.TypeName)
	}

	balance := memberByName(t, members, "Balance")
	if balance.Kind != member.KindData || balance.Repr != "42" {
		t.Errorf("Balance = %+v, want data 42", balance)
	}

	owner := memberByName(t, members, "Owner")
	if owner.Repr != `"amy"` {
		t.Errorf("Owner repr = %q, want quoted string", owner.Repr)
	}

	onClose := memberByName(t, members, "OnClose")
	if onClose.Kind != member.KindCallable {
		t.Errorf("OnClose kind = %v, want callable", onClose.Kind)
	}

	for _, m := range members {
		if m.Name == "hidden" {
			t.Error("unexported field leaked into members")
		}
		if m.Name == "Drain" {
			t.Error("pointer-receiver method leaked into value method set")
		}
	}
}

func TestScanPointerGainsMethodSet(t *testing.T) {
	v, err := Scan(&account{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	members := v.Members()
	memberByName(t, members, "Drain")
	memberByName(t, members, "Deposit")
	memberByName(t, members, "Balance")
	if got := v.TypeName(); got != "*reflectscan.account" {
		t.Errorf("TypeName() = %q", got)
	}
}

func TestScanStringKeyedMap(t *testing.T) {
	v, err := Scan(map[string]any{
		"count": 3,
		"greet": func() {},
		"T":     reflect.TypeOf(0),
		"gone":  nil,
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	members := v.Members()

	if m := memberByName(t, members, "count"); m.Kind != member.KindData || m.Repr != "3" {
		t.Errorf("count = %+v", m)
	}
	if m := memberByName(t, members, "greet"); m.Kind != member.KindCallable {
		t.Errorf("greet kind = %v, want callable", m.Kind)
	}
	if m := memberByName(t, members, "T"); m.Kind != member.KindType || m.Repr != "int" {
		t.Errorf("T = %+v, want type int", m)
	}
	if m := memberByName(t, members, "gone"); m.Kind != member.KindData || m.Repr != "nil" {
		t.Errorf("gone = %+v, want nil data", m)
	}
}

func TestScanNonStringKeysIgnored(t *testing.T) {
	v, err := Scan(map[int]string{1: "a"})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if got := v.Members(); len(got) != 0 {
		t.Errorf("Members() = %v, want none for int keys", got)
	}
}

func TestScanInvalid(t *testing.T) {
	if _, err := Scan(nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Scan(nil) error = %v, want ErrInvalidValue", err)
	}
}

func TestScanNilPointerKeepsMethods(t *testing.T) {
	v, err := Scan((*account)(nil))
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	memberByName(t, v.Members(), "Deposit")
	for _, m := range v.Members() {
		if m.Name == "Balance" {
			t.Error("nil pointer must not enumerate fields")
		}
	}
}

func TestReprForms(t *testing.T) {
	n := 5
	type bag struct {
		P     *int
		NilP  *int
		R     any
		Ch    chan int
		List  []int
		Table map[string]int
	}
	v, err := Scan(bag{P: &n, List: []int{1, 2}, Table: map[string]int{"k": 9}})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	members := v.Members()

	tests := []struct {
		name string
		want string
	}{
		{"P", "&5"},
		{"NilP", "nil"},
		{"R", "nil"},
		{"List", "[1 2]"},
		{"Table", "map[k:9]"},
	}
	for _, tt := range tests {
		if m := memberByName(t, members, tt.name); m.Repr != tt.want {
			t.Errorf("%s repr = %q, want %q", tt.name, m.Repr, tt.want)
		}
	}

	ch := memberByName(t, members, "Ch")
	if !strings.HasPrefix(ch.Repr, "<chan int 0x") {
		t.Errorf("Ch repr = %q, want opaque channel marker", ch.Repr)
	}
}

func TestScanScalar(t *testing.T) {
	v, err := Scan(42)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if v.TypeName() != "int" {
		t.Errorf("TypeName() = %q, want int", v.TypeName())
	}
	if got := v.Members(); len(got) != 0 {
		t.Errorf("Members() = %v, want none", got)
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	v, err := Scan(account{Balance: 1})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	got := v.Members()
	if len(got) == 0 {
		t.Fatal("expected members")
	}
	got[0].Name = "mutated"
	if v.Members()[0].Name == "mutated" {
		t.Error("Members() must return a copy")
	}
}
