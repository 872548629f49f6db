package formatter

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPadRight_AccentedTextKeepsDisplayWidth(t *testing.T) {
	assert.Equal(t, 6, lipgloss.Width(PadRight("Año", 6)))
	assert.Equal(t, 6, lipgloss.Width(PadRight("Ana", 6)))
	assert.Equal(t, "Año   ", PadRight("Año", 6))
}

func TestPadRight_MultibyteAtTargetWidthIsUntouched(t *testing.T) {
	// 13 display cells but 14 bytes; byte-based padding would truncate.
	assert.Equal(t, "Investigación", PadRight("Investigación", 13))
}

func TestPadRight_TruncatesOnRuneBoundaries(t *testing.T) {
	got := PadRight("Investigación", 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 12, lipgloss.Width(got))
	assert.Equal(t, "Investigaci…", got)
}

func TestPadRight_ExactWidthIsUntouched(t *testing.T) {
	assert.Equal(t, "Grupo", PadRight("Grupo", 5))
}
