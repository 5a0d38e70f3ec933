package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/Vovarama1992/email-reply-writer/internal/ai"
	"github.com/Vovarama1992/email-reply-writer/internal/config"
	"github.com/Vovarama1992/email-reply-writer/internal/email"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "replywriter",
	Short:        "Generate email reply options with an LLM",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func main() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.AddCommand(serveCmd, generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newModel(cfg config.Config) ai.Model {
	if cfg.Provider == config.ProviderOpenAI {
		return ai.NewOpenAIClient(ai.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.HTTPTimeout(),
		})
	}
	return ai.NewGeminiClient(ai.GeminiConfig{
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		APIKey:  cfg.GeminiAPIKey,
		Timeout: cfg.HTTPTimeout(),
	})
}

func serve(cfg config.Config) error {
	// --- DB (optional) ---
	var repo email.Repo
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db open error: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db ping error: %w", err)
		}

		repo = email.NewRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("db schema error: %w", err)
		}
	} else {
		log.Println("DATABASE_URL is not set, history disabled")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Email module wiring ---
	model := newModel(cfg)
	emailService := email.NewService(repo, model)
	emailHandler := email.NewHandler(emailService, cfg.SignatureName)

	email.RegisterRoutes(r, emailHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s (provider=%s)", cfg.Port, model.Name())
	return http.ListenAndServe(":"+cfg.Port, r)
}
