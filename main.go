package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"kalibot/assistant"
	"kalibot/catalog"
	"kalibot/config"
	"kalibot/executor"
	"kalibot/mcpserver"
	"kalibot/model"
	"kalibot/provider"
	"kalibot/storage"
	"kalibot/telegram"
)

const Version = "v0.2.0"

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the tool catalog over MCP on stdio instead of running the Telegram bot")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("kalibot " + Version)
		return
	}

	if err := run(*mcpMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(mcpMode bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.InitDebugLog(cfg.DataDir())

	creds := config.NewCredentialStore(
		config.SecurityMethod(cfg.Security.CredentialStorage),
		cfg.Security.SSHKeyPath,
	)
	if err := creds.Load(cfg.DataDir()); err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	reg, err := catalog.NewRegistry(catalog.BuiltinEntries())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg.Scan(ctx)
	writeInventory(cfg.DataDir(), reg)

	exec := executor.New(cfg)

	if mcpMode {
		// MCP hosts do their own reasoning; only the catalog and executor
		// are wired, never the assistant.
		srv := mcpserver.New("kalibot", Version, reg, func(ctx context.Context, tool string, params map[string]any) (string, error) {
			res, err := exec.Execute(ctx, tool, params)
			if err != nil {
				return "", err
			}
			return res.Output(), nil
		})
		return srv.ServeStdio()
	}

	runs, err := storage.NewRunStorage(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("failed to open run storage: %w", err)
	}
	defer runs.Close()

	store := assistant.NewStore(cfg.AI.MaxContext)
	asst := assistant.NewAssistant(
		buildProvider(cfg, creds),
		store,
		assistant.BuildSystemPrompt(reg),
		model.CompletionOptions{
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		},
	)

	disp := &assistant.Dispatcher{
		Catalog: reg,
		Exec:    exec,
		Runs:    runs,
	}

	token := creds.Get("telegram")
	if token == "" {
		return fmt.Errorf("no Telegram token configured; set KALIBOT_TELEGRAM_TOKEN or add it to the credential store")
	}

	bot, err := telegram.NewBot(token, cfg, asst, disp, reg, exec, runs)
	if err != nil {
		return err
	}

	if err := bot.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// writeInventory persists the discovered tool set so shell hooks and external
// dashboards can read it without talking to the bot.
func writeInventory(dataDir string, reg *catalog.Registry) {
	data, err := reg.ExportJSON()
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("inventory export failed: %v", err)
		}
		return
	}
	path := filepath.Join(dataDir, "inventory.json")
	if err := os.WriteFile(path, data, 0600); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("inventory write failed: %v", err)
	}
}

// buildProvider creates the configured AI provider. A missing credential is
// not fatal: the bot starts and answers that the assistant is unavailable.
func buildProvider(cfg *config.Config, creds *config.CredentialStore) model.Provider {
	providerType := provider.MapProviderIDToType(cfg.AI.Provider)
	if providerType == "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown AI provider %q\n", cfg.AI.Provider)
		return nil
	}

	apiKey := creds.Get(string(providerType))
	if apiKey == "" && providerType != provider.ProviderTypeOllama {
		fmt.Fprintf(os.Stderr, "Warning: no API key for %s; the assistant is disabled\n", cfg.AI.Provider)
		return nil
	}

	p, err := provider.NewProvider(provider.Config{
		Type:    providerType,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		APIKey:  apiKey,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: provider setup failed: %v\n", err)
		return nil
	}
	return p
}
