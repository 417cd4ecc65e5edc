package commands

import (
	"context"
	"strings"
	"testing"
)

func TestMenuZeroExits(t *testing.T) {
	if err := runMenu(context.Background(), strings.NewReader("0\n")); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
}

func TestMenuInvalidChoiceThenExit(t *testing.T) {
	if err := runMenu(context.Background(), strings.NewReader("banana\n99\n0\n")); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
}

func TestMenuEndOfInput(t *testing.T) {
	if err := runMenu(context.Background(), strings.NewReader("")); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
}
