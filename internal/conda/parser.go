package conda

import (
	"strings"

	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/models"
	"github.com/JaLnYn/zed-pyenvselect/internal/venv"
)

// ParseReport extracts environment records from a `conda info --envs`
// style report. It never fails: unparseable lines are dropped.
//
// The expected grammar is a header region of lines starting with '#'
// followed by one row per environment. Each row splits on whitespace runs
// with the column contract `<name> <path> [extra columns ignored]`; rows
// with fewer than two tokens are skipped, and rows whose path does not
// resolve to a bin/python interpreter yield no record.
//
// The first non-header line is parsed as data, not discarded: conda's
// actual output has no boundary row after the '#' header, so dropping that
// line would silently lose the first environment (usually base). A stray
// column-header row self-filters because its second token never resolves
// to an interpreter.
func ParseReport(fs filesystem.FileSystem, report string) []models.Record {
	var records []models.Record

	header := true
	for _, line := range strings.Split(report, "\n") {
		if header {
			if strings.HasPrefix(line, "#") {
				continue
			}
			header = false
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		if python, ok := venv.ResolveInterpreter(fs, fields[1]); ok {
			records = append(records, models.NewEnvironment(fields[0], python, models.SourceConda))
		}
	}

	return records
}
