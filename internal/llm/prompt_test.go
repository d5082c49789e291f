package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanEmailTextForwardMarker(t *testing.T) {
	in := "Quoted header\n-----Original Message-----\nREAL CONTENT"
	assert.Equal(t, "REAL CONTENT", CleanEmailText(in))
}

func TestCleanEmailTextFirstMarkerWins(t *testing.T) {
	in := "noise\n---------- Forwarded message ---------\nkeep this\n-------- Mensaje reenviado --------\nand this"
	out := CleanEmailText(in)
	assert.NotContains(t, out, "noise")
	assert.Contains(t, out, "keep this")
	assert.Contains(t, out, "and this")
}

func TestCleanEmailTextSignatureTruncation(t *testing.T) {
	in := "Necesito cobertor COB-001\nEnviado desde mi iPhone"
	assert.Equal(t, "Necesito cobertor COB-001", CleanEmailText(in))
}

func TestCleanEmailTextNoMarkers(t *testing.T) {
	in := "  texto simple  "
	assert.Equal(t, "texto simple", CleanEmailText(in))
}

func TestBuildPromptCapsText(t *testing.T) {
	long := strings.Repeat("a", MaxPromptText+500)
	prompt := BuildPrompt("asunto", long)
	assert.Contains(t, prompt, "asunto")
	// the overflow must not survive into the prompt
	assert.NotContains(t, prompt, strings.Repeat("a", MaxPromptText+1))
	assert.Contains(t, prompt, strings.Repeat("a", MaxPromptText))
}

func TestBuildPromptNamesFields(t *testing.T) {
	prompt := BuildPrompt("s", "t")
	for _, field := range []string{"codigo_cobertor", "cuartel", "hileras", "largo_metros", "prioridad", "descripcion", "notas"} {
		assert.Contains(t, prompt, field)
	}
}

func TestBuildPromptCapDoesNotSplitRunes(t *testing.T) {
	// 1 ascii byte followed by 3-byte runes puts the cap mid-rune
	text := "a" + strings.Repeat("€", MaxPromptText/3)
	prompt := BuildPrompt("asunto", text)
	assert.True(t, utf8.ValidString(prompt))
}

func TestCapBytes(t *testing.T) {
	assert.Equal(t, "abc", capBytes("abc", 10))
	assert.Equal(t, "ab", capBytes("abcd", 2))
	assert.Equal(t, "a€", capBytes("a€€", 4))
	// cut lands inside the second rune and backs up to its start
	assert.Equal(t, "a", capBytes("a€€", 2))
	assert.True(t, utf8.ValidString(capBytes(strings.Repeat("ñ", 50), 33)))
}
