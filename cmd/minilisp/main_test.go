package main

import (
	"bytes"
	"testing"
)

func TestInterpretSuccess(t *testing.T) {
	var buf bytes.Buffer
	if err := interpret([]byte("(print-num (+ 1 2))"), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "3\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestInterpretSyntaxError(t *testing.T) {
	var buf bytes.Buffer
	err := interpret([]byte(")"), &buf)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestInterpretRuntimeErrorStopsAtFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	err := interpret([]byte("(print-num 1) (print-num (+ 1 #t)) (print-num 2)"), &buf)
	if err == nil {
		t.Fatalf("expected a type error")
	}
	if buf.String() != "1\n" {
		t.Errorf("output before the failing statement should be retained, got %q", buf.String())
	}
}
