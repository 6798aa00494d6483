package discovery

import (
	"errors"
	"testing"

	"github.com/JaLnYn/zed-pyenvselect/internal/conda"
	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/models"
	"github.com/JaLnYn/zed-pyenvselect/internal/venv"
)

func newTestFS() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/.venv/pyvenv.cfg", []byte(""))
	fs.AddFile("/project/.venv/bin/python", []byte{})
	fs.AddFile("/opt/conda/envs/ml/bin/python", []byte{})
	return fs
}

func TestDiscover_ScannerThenManagerOrder(t *testing.T) {
	fs := newTestFS()

	source := conda.NewMockCondaClient()
	source.SetReport("# conda environments:\nml  /opt/conda/envs/ml\n")

	records := NewService(fs, source).Discover("/project")

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Source != models.SourceVenv || records[0].Name != ".venv" {
		t.Fatalf("expected scanner record first, got %+v", records[0])
	}
	if records[1].Source != models.SourceConda || records[1].Name != "ml" {
		t.Fatalf("expected manager record second, got %+v", records[1])
	}
}

func TestDiscover_NoRootSkipsScan(t *testing.T) {
	fs := newTestFS()

	source := conda.NewMockCondaClient()
	source.SetReport("ml  /opt/conda/envs/ml\n")

	records := NewService(fs, source).Discover("")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(records), records)
	}
	if records[0].Source != models.SourceConda {
		t.Fatalf("expected conda record, got %+v", records[0])
	}
}

func TestDiscover_ManagerFailureContributesNothing(t *testing.T) {
	fs := newTestFS()

	source := conda.NewMockCondaClient()
	source.ReportError = errors.New("conda: command not found")

	records := NewService(fs, source).Discover("/project")

	if len(records) != 1 {
		t.Fatalf("expected only scanner records, got %+v", records)
	}
	if records[0].Source != models.SourceVenv {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestDiscover_NoDeduplication(t *testing.T) {
	// The same environment reachable from both sources appears twice;
	// the model does not guarantee uniqueness.
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/env/pyvenv.cfg", []byte(""))
	fs.AddFile("/project/env/bin/python", []byte{})

	source := conda.NewMockCondaClient()
	source.SetReport("env  /project/env\n")

	records := NewService(fs, source).Discover("/project")

	if len(records) != 2 {
		t.Fatalf("expected duplicate records from both sources, got %+v", records)
	}
	if records[0].InterpreterPath != records[1].InterpreterPath {
		t.Fatalf("expected both records to point at the same interpreter: %+v", records)
	}
}

func TestDiscover_ScannerOptionsApplied(t *testing.T) {
	fs := newTestFS()
	fs.AddFile("/project/.gitignore", []byte(".venv/\n"))

	source := conda.NewMockCondaClient()

	service := NewService(fs, source, venv.WithIgnoreFile("/project/.gitignore"))
	records := service.Discover("/project")

	if len(records) != 0 {
		t.Fatalf("expected ignore file to prune the venv, got %+v", records)
	}
}
