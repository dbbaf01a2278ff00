package models

import "github.com/Hemachandra9899/Bacckend/config"

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	LLM         ChatLLM
	Embeddings  EmbeddingsClient
	VectorStore VectorStore
	Config      *config.Config
}
