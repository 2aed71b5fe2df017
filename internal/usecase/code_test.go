package usecase

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewOrderCodeUsesAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewOrderCode()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !orderCodePattern.MatchString(code) {
			t.Fatalf("code %q outside alphabet", code)
		}
	}
}

func TestOrderCodeAlphabetExcludesLookalikes(t *testing.T) {
	if strings.ContainsAny(OrderCodeAlphabet, "01ILO") {
		t.Fatalf("alphabet contains confusable characters: %s", OrderCodeAlphabet)
	}
}

func TestNewOrderCodeFailsOnShortEntropy(t *testing.T) {
	if _, err := newOrderCode(bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error when random source is exhausted")
	}
}
