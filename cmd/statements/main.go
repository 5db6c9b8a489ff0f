package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"video-rental-statements/internal/catalog"
	"video-rental-statements/internal/config"
	"video-rental-statements/internal/jobs"
	"video-rental-statements/internal/logger"
	"video-rental-statements/internal/scheduler"
	"video-rental-statements/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (defaults are used when empty)")
	runOnce := flag.String("run-once", "statements", "Run a job once and exit ('statements'); empty starts the scheduler")
	format := flag.String("format", "", "Statement format override: text or html")
	customer := flag.String("customer", "", "Render only this customer's statement")
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if *format != "" {
		cfg.Statement.Format = *format
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid format: %v", err)
		}
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting statement runner", "format", cfg.Statement.Format, "workers", cfg.Batch.Workers)

	library := catalog.Sample()
	statements := service.NewStatementService(cfg.Batch.Workers)

	if *customer != "" {
		renderCustomer(statements, library, *customer, cfg)
		return
	}

	jobRunner := jobs.NewJobRunner(library, statements, cfg, os.Stdout)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	cronScheduler.Start()
	logger.Info("Statement scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down statement scheduler...")
	cronScheduler.Stop()
}

func renderCustomer(statements service.StatementService, library *catalog.Library, name string, cfg *config.Config) {
	c, ok := library.Get(name)
	if !ok {
		logger.Error("Unknown customer", "customer", name)
		os.Exit(1)
	}
	res, err := statements.Render(context.Background(), c, cfg.StatementFormat())
	if err != nil {
		logger.Error("Failed to render statement", "customer", name, "error", err)
		os.Exit(1)
	}
	fmt.Println(res.Statement)
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "statements":
		if _, err := jobRunner.RunStatements(context.Background()); err != nil {
			logger.Error("Statement run failed", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - statements\n")
		os.Exit(1)
	}
}
