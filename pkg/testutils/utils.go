package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Hemachandra9899/Bacckend/config"
)

// NewTestConfig returns a config with the production defaults, pointed at
// nothing. Tests override the endpoints they fake.
func NewTestConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{
			Service: "groq",
			Model:   "llama-3.1-8b-instant",
			APIKey:  "test-key",
		},
		Embeddings: config.EmbeddingsConfig{
			Service:    "local",
			Model:      "all-MiniLM-L6-v2",
			Dimensions: 384,
		},
		VectorStore: config.VectorStoreConfig{
			APIKey:     "test-key",
			IndexName:  "portfolio-free",
			Dimensions: 1536,
		},
		Notes: config.NotesConfig{
			TopK:      3,
			ListLimit: 10,
		},
		Server: config.ServerConfig{
			Port:        5000,
			Environment: "development",
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

// GenerateRandomString returns a random hex string of the given length.
func GenerateRandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		panic(fmt.Sprintf("failed to generate random string: %v", err))
	}
	return hex.EncodeToString(bytes)[:length]
}

// FakeNoteFields returns a generated title and description pair.
func FakeNoteFields() (string, string) {
	return gofakeit.Sentence(3), gofakeit.Paragraph(1, 2, 8, " ")
}
