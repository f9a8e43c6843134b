package main

import (
	auth "Pergola/internal/auth"
	batch "Pergola/internal/batch"
	export "Pergola/internal/export"
	importer "Pergola/internal/importer"
	pipeline "Pergola/internal/pipeline"
	pricing "Pergola/internal/pricing"
	project "Pergola/internal/project"
	quote "Pergola/internal/quote"
	repo "Pergola/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}
	projectH := &project.Handler{Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	pipelineH := &pipeline.Handler{}
	pricingH := &pricing.Handler{}

	// The configurator itself is public: the showroom widget runs it
	// without a login.
	api.HandleFunc("/configure/calc", pipelineH.Calc).Methods("POST")
	api.HandleFunc("/configure/price", pricingH.Calc).Methods("POST")
	api.HandleFunc("/lead", projectH.Lead).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	batchH := &batch.Handler{}
	quoteH := &quote.Handler{}
	exportH := &export.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/configure/debug", pipelineH.Debug).Methods("POST")
	secureApi.HandleFunc("/configure/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/quote/pdf", quoteH.Generate).Methods("POST")
	secureApi.HandleFunc("/quote/bom", exportH.BOM).Methods("POST")
	secureApi.HandleFunc("/quote/import", importerH.Configurations).Methods("POST")

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :8080")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":8080",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
