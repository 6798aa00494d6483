package discovery

import (
	"fmt"
	"strings"

	"github.com/JaLnYn/zed-pyenvselect/internal/models"
)

// Render formats records as an aligned two-column block wrapped in the
// listing banner, with a trailing record count.
//
// Names are padded to the longest name so the path column lines up.
// Diagnostic records have no interpreter path and render as a name with a
// trailing blank, which is how they are told apart visually.
func Render(records []models.Record) string {
	maxNameLength := 0
	for _, record := range records {
		if len(record.Name) > maxNameLength {
			maxNameLength = len(record.Name)
		}
	}

	rows := make([]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, fmt.Sprintf("%-*s    %s", maxNameLength, record.Name, record.InterpreterPath))
	}

	text := fmt.Sprintf("======\n %s ======", strings.Join(rows, "\n"))
	return fmt.Sprintf("%s\nlen: %d", text, len(records))
}
