package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"dealerdesk-backend/internal/config"
	"dealerdesk-backend/internal/database"
	"dealerdesk-backend/internal/handlers"
	"dealerdesk-backend/internal/middleware"
	"dealerdesk-backend/internal/numbering"
	"dealerdesk-backend/internal/retention"
	"dealerdesk-backend/internal/storage"
)

func main() {
	// 1. Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to PostgreSQL
	db := database.New(&cfg.DB)
	defer db.Close()

	// 3. Initialize the workbook archive store (local disk, or R2 when configured)
	var fileStore storage.Store
	if cfg.Storage.UseR2() {
		fileStore, err = storage.NewR2Store(cfg.Storage.R2AccountID, cfg.Storage.R2AccessKey,
			cfg.Storage.R2SecretKey, cfg.Storage.R2Bucket, cfg.Storage.R2PublicURL)
	} else {
		fileStore, err = storage.NewLocalStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
	}
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// 4. Set up router with global middleware
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.ClientURL, "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Total-Rows", "X-Updated-Rows", "X-Cleaned-Rows"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5. Initialize handlers with their dependencies
	secureCookies := strings.HasPrefix(cfg.ClientURL, "https://")
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, secureCookies)
	gatePassHandler := handlers.NewGatePassHandler(db)
	receiptHandler := handlers.NewReceiptHandler(db, "receipts", "receipt",
		numbering.ReceiptFloor, retention.Receipts)
	dpReceiptHandler := handlers.NewReceiptHandler(db, "dp_receipts", "dp receipt",
		numbering.DPReceiptFloor, retention.DPReceipts)
	generalReceiptHandler := handlers.NewGeneralReceiptHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db, fileStore)
	vehicleHandler := handlers.NewVehicleHandler(db)
	cleanerHandler := handlers.NewCleanerHandler()

	// 6. Public routes (no authentication required)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("DealerDesk API"))
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(db.Health())
	})

	// Login is rate-limited per IP to slow down password guessing
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rate.Every(12*time.Second), 5))
		r.Post("/api/auth/login", authHandler.Login)
	})
	r.Post("/api/auth/logout", authHandler.Logout)

	// Serve archived workbooks (local storage only; R2 serves via public URLs)
	if !cfg.Storage.UseR2() {
		fs := http.StripPrefix("/api/files/", http.FileServer(http.Dir(cfg.Storage.Dir)))
		r.Get("/api/files/*", fs.ServeHTTP)
	}

	// 7. Protected routes (require valid JWT)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		// Current user profile
		r.Get("/api/auth/me", authHandler.GetMe)

		// Gate pass book
		r.Get("/api/gatepasses/next", gatePassHandler.Next)
		r.Get("/api/gatepasses/months", gatePassHandler.Months)
		r.Get("/api/gatepasses", gatePassHandler.List)
		r.Post("/api/gatepasses", gatePassHandler.Create)
		r.Put("/api/gatepasses/{passNo}", gatePassHandler.Update)

		// Receipt book
		r.Get("/api/receipts/next", receiptHandler.Next)
		r.Get("/api/receipts/months", receiptHandler.Months)
		r.Get("/api/receipts", receiptHandler.List)
		r.Post("/api/receipts", receiptHandler.Create)
		r.Put("/api/receipts/{receiptNo}", receiptHandler.Update)

		// Down payment receipt book
		r.Get("/api/dp-receipts/next", dpReceiptHandler.Next)
		r.Get("/api/dp-receipts/months", dpReceiptHandler.Months)
		r.Get("/api/dp-receipts", dpReceiptHandler.List)
		r.Post("/api/dp-receipts", dpReceiptHandler.Create)
		r.Put("/api/dp-receipts/{receiptNo}", dpReceiptHandler.Update)

		// General (FY-prefixed) receipt book
		r.Get("/api/general-receipts/next", generalReceiptHandler.Next)
		r.Get("/api/general-receipts/months", generalReceiptHandler.Months)
		r.Get("/api/general-receipts", generalReceiptHandler.List)
		r.Post("/api/general-receipts", generalReceiptHandler.Create)
		r.Put("/api/general-receipts/{receiptNo}", generalReceiptHandler.Update)

		// Attendance dashboard
		r.Post("/api/attendance/upload", attendanceHandler.Upload)
		r.Get("/api/attendance/data", attendanceHandler.GetData)
		r.Get("/api/attendance/months", attendanceHandler.Months)
		r.Get("/api/attendance/employees", attendanceHandler.Employees)

		// Vehicle master search
		r.Get("/api/vehicles/search", vehicleHandler.Search)

		// Spreadsheet cleaners
		r.Post("/api/cleaner/vahan", cleanerHandler.Vahan)
		r.Post("/api/cleaner/dms", cleanerHandler.DMS)

		// Write operations restricted to admin role
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMinRole("admin"))

			// Vehicle master replacement
			r.Post("/api/vehicles/upload", vehicleHandler.Upload)
		})
	})

	// 8. Start server with graceful shutdown
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-done
	log.Println("Server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
