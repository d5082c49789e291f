package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// empty values count as unset
	for _, key := range []string{
		"GRPC_ADDR", "GMAIL_LABEL", "OPENAI_MODEL", "OPENAI_TEMPERATURE",
		"BATCH_SIZE", "MIN_BODY_LENGTH", "PDFTOTEXT_BIN", "HISTORY_MONTHS_MAX",
		"DB_MAX_CONNS", "DB_MAX_CONN_LIFETIME",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, "cobertores", cfg.Mail.Label)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.InDelta(t, 0.1, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 50, cfg.Pipeline.BatchSize)
	assert.Equal(t, 20, cfg.Pipeline.MinBodyLength)
	assert.Equal(t, "pdftotext", cfg.Pipeline.Pdftotext)
	assert.Equal(t, 12, cfg.Pipeline.HistoryMonthsMax)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.MaxConnLifetime)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/cobertor")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("GMAIL_LABEL", "pedidos")
	t.Setenv("OPENAI_TEMPERATURE", "0.4")
	t.Setenv("BATCH_SIZE", "10")
	t.Setenv("GMAIL_TIMEOUT", "90s")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/cobertor", cfg.Database.DSN)
	assert.Equal(t, int32(7), cfg.Database.MaxConns)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, "pedidos", cfg.Mail.Label)
	assert.InDelta(t, 0.4, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 10, cfg.Pipeline.BatchSize)
	assert.Equal(t, 90*time.Second, cfg.Mail.Timeout)
}

func TestLoadConfigMalformedValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "muchas")
	t.Setenv("BATCH_SIZE", "")
	t.Setenv("GMAIL_TIMEOUT", "pronto")

	cfg := LoadConfig()
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 50, cfg.Pipeline.BatchSize)
	assert.Equal(t, 60*time.Second, cfg.Mail.Timeout)
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{
		Database: DatabaseConfig{DSN: "postgres://x"},
		Server:   ServerConfig{GRPCAddr: ":8080"},
		LLM:      LLMConfig{APIKey: "sk-test"},
	}
	require.NoError(t, valid.Validate())

	missingDB := *valid
	missingDB.Database.DSN = ""
	err := missingDB.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")

	missingKey := *valid
	missingKey.LLM.APIKey = ""
	err = missingKey.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
