package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/pkg/llms"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
	"github.com/Hemachandra9899/Bacckend/pkg/server"
	"github.com/Hemachandra9899/Bacckend/pkg/vectorstore"
)

// run is the entrypoint for the secondbrain server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring secondbrain: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting secondbrain server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	// The store check is diagnostic only. A failure leaves the server
	// running in degraded mode; requests will surface store errors.
	reportIndexStats(context.Background(), appState)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// creates the embedding, vector store, and chat completion clients
func NewAppState(cfg *config.Config) *models.AppState {
	llmClient, err := llms.NewChatClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create chat client: %s", err)
	}

	store, err := vectorstore.NewPineconeVectorStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create vector store client: %s", err)
	}

	appState := &models.AppState{
		LLM:         llmClient,
		Embeddings:  llms.NewEmbedder(cfg),
		VectorStore: store,
		Config:      cfg,
	}

	setupSignalHandler()

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// reportIndexStats logs the vector index configuration at startup and
// warns when the embedding model is narrower than the index, since those
// vectors will be zero-padded.
func reportIndexStats(ctx context.Context, appState *models.AppState) {
	stats, err := appState.VectorStore.DescribeIndexStats(ctx)
	if err != nil {
		log.Errorf("Vector store connectivity check failed: %s", err)
		log.Warn("Server started but the vector store is unreachable")
		return
	}

	log.Infof("Connected to vector index %q", appState.Config.VectorStore.IndexName)
	log.Infof(
		"Index dimension: %d, total records: %d, fullness: %.2f%%",
		stats.Dimension,
		stats.TotalRecordCount,
		stats.IndexFullness*100,
	)

	nativeDimensions := appState.Config.Embeddings.Dimensions
	if stats.Dimension > 0 && nativeDimensions < stats.Dimension {
		log.Warnf(
			"Embedding model produces %d dimensions but the index expects %d; vectors will be zero-padded",
			nativeDimensions,
			stats.Dimension,
		)
	}
}

// setupSignalHandler sets up a signal handler to shut down gracefully on termination
func setupSignalHandler() {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		log.Infof("Received %s, shutting down", sig)
		os.Exit(0)
	}()
}
