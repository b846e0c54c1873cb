package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseVarDef(t *testing.T) {
	cases := []struct {
		in   string
		name string
		val  float64
		ok   bool
	}{
		{"x=5", "x", 5, true},
		{"x = 5", "x", 5, true},
		{"x=2^10", "x", 1024, true},
		{"y=pi()", "y", 3.141592653589793, true},
		{"x", "", 0, false},
		{"x=", "", 0, false},
		{"x=)", "", 0, false},
	}
	for _, c := range cases {
		name, val, err := parseVarDef(c.in)
		if c.ok && err != nil {
			t.Errorf("%q failed: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%q gave no error", c.in)
			}
			continue
		}
		if name != c.name || val != c.val {
			t.Errorf("%q: want %s=%g, got %s=%g", c.in, c.name, c.val, name, val)
		}
	}
}

func TestEvalCmd(t *testing.T) {
	cmd := newEvalCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--var", "x=5", "x * 2"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "10" {
		t.Errorf("want 10, got %q", got)
	}
}

func TestEvalCmdAssignment(t *testing.T) {
	cmd := newEvalCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"x = 5"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "x = 5" {
		t.Errorf("want assignment echo, got %q", got)
	}
}

func TestNLCmd(t *testing.T) {
	cmd := newNLCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--echo", "2", "to", "the", "power", "of", "5"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(buf.String())
	if got != "2 ^ 5 : 32" {
		t.Errorf("want %q, got %q", "2 ^ 5 : 32", got)
	}
}
