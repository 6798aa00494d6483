package models

// Source identifies where a record was discovered.
type Source string

const (
	// SourceVenv marks records found by scanning a project tree for
	// virtual environment marker files.
	SourceVenv Source = "venv"

	// SourceConda marks records parsed from the environment manager report.
	SourceConda Source = "conda"
)

// RecordKind distinguishes usable environments from scan diagnostics.
type RecordKind string

const (
	// KindEnvironment is a discovered environment with a resolved interpreter.
	KindEnvironment RecordKind = "environment"

	// KindDiagnostic is a display-only entry describing a scan failure.
	KindDiagnostic RecordKind = "diagnostic"
)

// Record is a single discovery result.
//
// A diagnostic record never carries an interpreter path: it represents a
// directory that could not be read, not a selectable environment.
type Record struct {
	// Kind tags the variant.
	Kind RecordKind `json:"kind"`

	// Name is the environment name (directory name for venvs, the
	// manager-assigned name for conda environments) or, for diagnostics,
	// the failure message.
	Name string `json:"name"`

	// InterpreterPath is the path to the environment's python executable.
	// Empty for diagnostics.
	InterpreterPath string `json:"interpreterPath,omitempty"`

	// Source indicates which discovery mechanism produced the record.
	Source Source `json:"source"`
}

// NewEnvironment creates a selectable environment record
func NewEnvironment(name, interpreterPath string, source Source) Record {
	return Record{
		Kind:            KindEnvironment,
		Name:            name,
		InterpreterPath: interpreterPath,
		Source:          source,
	}
}

// NewDiagnostic creates a display-only record describing a scan failure
func NewDiagnostic(message string, source Source) Record {
	return Record{
		Kind:   KindDiagnostic,
		Name:   message,
		Source: source,
	}
}

// Selectable reports whether the record points at a usable interpreter
func (r Record) Selectable() bool {
	return r.Kind == KindEnvironment
}

// IsValid checks if the record kind is valid
func (k RecordKind) IsValid() bool {
	switch k {
	case KindEnvironment, KindDiagnostic:
		return true
	}
	return false
}
