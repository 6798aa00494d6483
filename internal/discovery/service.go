package discovery

import (
	"github.com/charmbracelet/log"

	"github.com/JaLnYn/zed-pyenvselect/internal/conda"
	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/models"
	"github.com/JaLnYn/zed-pyenvselect/internal/venv"
)

// Service aggregates environment records from the project-tree scanner and
// the environment manager report.
type Service struct {
	fs          filesystem.FileSystem
	source      conda.ReportSource
	scannerOpts []venv.Option
}

// NewService creates a new Service instance. Scanner options are applied
// to every scan started by Discover.
func NewService(fs filesystem.FileSystem, source conda.ReportSource, scannerOpts ...venv.Option) *Service {
	return &Service{
		fs:          fs,
		source:      source,
		scannerOpts: scannerOpts,
	}
}

// Discover returns scanner records followed by manager records.
//
// The scan runs only when root is non-empty. The manager report is always
// attempted; a failing or missing manager contributes zero records and
// never fails discovery. Records are not deduplicated or sorted, and each
// call builds them fresh.
func (s *Service) Discover(root string) []models.Record {
	var records []models.Record

	if root != "" {
		scanner := venv.NewScanner(s.fs, s.scannerOpts...)
		records = append(records, scanner.Scan(root)...)
	}

	report, err := s.source.Report()
	if err != nil {
		log.Debug("environment manager report unavailable", "err", err)
		return records
	}

	return append(records, conda.ParseReport(s.fs, report)...)
}
