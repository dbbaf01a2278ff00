package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	LLM         LLM               `mapstructure:"llm"`
	Embeddings  EmbeddingsConfig  `mapstructure:"embeddings"`
	VectorStore VectorStoreConfig `mapstructure:"vector_store"`
	Notes       NotesConfig       `mapstructure:"notes"`
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
}

type LLM struct {
	// Service is the chat completion provider. "groq" and "openai" are
	// supported. Both speak the OpenAI chat completions protocol.
	Service string `mapstructure:"service"`
	Model   string `mapstructure:"model"`
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key"`
	// Endpoint overrides the provider base URL. Required for "groq".
	Endpoint string `mapstructure:"endpoint"`
}

type EmbeddingsConfig struct {
	// Service is the embeddings provider. "local" posts to an inference
	// sidecar serving a sentence-transformer model; "openai" uses the
	// OpenAI embeddings API.
	Service string `mapstructure:"service"`
	Model   string `mapstructure:"model"`
	// Dimensions is the native output width of the embedding model, not
	// the index width. The index width is discovered from the store.
	Dimensions int    `mapstructure:"dimensions"`
	ServerURL  string `mapstructure:"server_url"`
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key"`
}

type VectorStoreConfig struct {
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key"`
	// IndexHost is the data-plane URL of the Pinecone index.
	IndexHost string `mapstructure:"index_host"`
	IndexName string `mapstructure:"index_name"`
	// Dimensions is the vector width the index was created with. Stored
	// vectors must match it exactly.
	Dimensions int `mapstructure:"dimensions"`
}

type NotesConfig struct {
	TopK      int `mapstructure:"top_k"`
	ListLimit int `mapstructure:"list_limit"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// Environment gates whether raw error detail is included in API
	// error responses.
	Environment string `mapstructure:"environment"`
	// CORSAllowedOrigin is the browser client address allowed to call
	// the API cross-origin.
	CORSAllowedOrigin string `mapstructure:"cors_allowed_origin"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const EnvironmentProduction = "production"

func (s ServerConfig) IsProduction() bool {
	return s.Environment == EnvironmentProduction
}
