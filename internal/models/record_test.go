package models

import "testing"

func TestNewEnvironment(t *testing.T) {
	record := NewEnvironment(".venv", "/project/.venv/bin/python", SourceVenv)

	if record.Kind != KindEnvironment {
		t.Fatalf("unexpected kind: %s", record.Kind)
	}
	if !record.Selectable() {
		t.Fatal("environment record should be selectable")
	}
	if record.InterpreterPath != "/project/.venv/bin/python" {
		t.Fatalf("unexpected interpreter path: %s", record.InterpreterPath)
	}
}

func TestNewDiagnostic(t *testing.T) {
	record := NewDiagnostic("Error reading directory (/p): denied", SourceVenv)

	if record.Kind != KindDiagnostic {
		t.Fatalf("unexpected kind: %s", record.Kind)
	}
	if record.Selectable() {
		t.Fatal("diagnostic record must not be selectable")
	}
	if record.InterpreterPath != "" {
		t.Fatalf("diagnostic record must have empty interpreter path, got %s", record.InterpreterPath)
	}
}

func TestRecordKindIsValid(t *testing.T) {
	if !KindEnvironment.IsValid() || !KindDiagnostic.IsValid() {
		t.Fatal("expected built-in kinds to be valid")
	}
	if RecordKind("bogus").IsValid() {
		t.Fatal("unexpected kind should be invalid")
	}
}
