package conda

import (
	"testing"

	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/models"
)

func TestParseReport_TabularOutput(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/a/bin/python", []byte{})
	fs.AddFile("/b/bin/python", []byte{})

	report := "# header\nName  Path\nenvA  /a\nenvB  /b  extra"
	records := ParseReport(fs, report)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}

	if records[0].Name != "envA" || records[0].InterpreterPath != "/a/bin/python" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Name != "envB" || records[1].InterpreterPath != "/b/bin/python" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	for _, record := range records {
		if record.Source != models.SourceConda {
			t.Fatalf("unexpected source: %s", record.Source)
		}
	}
}

func TestParseReport_FirstDataLineKept(t *testing.T) {
	// conda's real output has no boundary row after the '#' header; the
	// first non-header line is already an environment and must not be
	// dropped.
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/opt/conda/bin/python", []byte{})
	fs.AddFile("/opt/conda/envs/ml/bin/python", []byte{})

	report := "# conda environments:\n#\nbase  /opt/conda\nml  /opt/conda/envs/ml\n"
	records := ParseReport(fs, report)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Name != "base" {
		t.Fatalf("expected base first, got %s", records[0].Name)
	}
}

func TestParseReport_UnresolvedPathsDropped(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	report := "# header\nenvA  /a\nenvB  /b"
	if records := ParseReport(fs, report); len(records) != 0 {
		t.Fatalf("expected 0 records when interpreters do not resolve, got %+v", records)
	}
}

func TestParseReport_SingleTokenLineDropped(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/a/bin/python", []byte{})

	report := "# header\nlonely\nenvA  /a"
	records := ParseReport(fs, report)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(records), records)
	}
	if records[0].Name != "envA" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestParseReport_ActiveMarkerShiftsColumns(t *testing.T) {
	// The '*' active-environment marker shifts the path column; the line
	// drops out at interpreter resolution. Documented brittleness of the
	// column contract.
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/opt/conda/bin/python", []byte{})

	report := "# conda environments:\nbase  *  /opt/conda\n"
	if records := ParseReport(fs, report); len(records) != 0 {
		t.Fatalf("expected active-marker line to misparse and drop, got %+v", records)
	}
}

func TestParseReport_Empty(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	if records := ParseReport(fs, ""); len(records) != 0 {
		t.Fatalf("expected no records for empty report, got %+v", records)
	}
}
