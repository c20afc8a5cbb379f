// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sitegen-workers/internal/common/aws"
	"sitegen-workers/internal/common/camunda"
	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/common/database"
	commonhttp "sitegen-workers/internal/common/http"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/common/observability"
	"sitegen-workers/internal/common/zoho"
	"sitegen-workers/pkg/registry"

	// Infrastructure Workers (1)
	vts "sitegen-workers/internal/workers/infrastructure/validate-tenant-subscription"

	// Data Access Workers (4)
	fbb "sitegen-workers/internal/workers/data-access/fetch-business-bundle"
	fss "sitegen-workers/internal/workers/data-access/fetch-search-snippets"
	qbd "sitegen-workers/internal/workers/data-access/query-business-directory"
	slp "sitegen-workers/internal/workers/data-access/sync-listing-profile"

	// Site Planning Workers (5)
	gsq "sitegen-workers/internal/workers/sitegen/generate-smart-questions"
	rps "sitegen-workers/internal/workers/sitegen/recommend-page-sections"
	sbd "sitegen-workers/internal/workers/sitegen/score-business-data"
	spt "sitegen-workers/internal/workers/sitegen/select-page-template"
	ssp "sitegen-workers/internal/workers/sitegen/store-site-plan"

	// Integration Workers (2)
	cls "sitegen-workers/internal/workers/crm/crm-lead-sync"
	soq "sitegen-workers/internal/workers/communication/send-owner-questions"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Load Template Registry ---
	templateRegistry, err := registry.LoadRegistry(cfg.Template.RegistryPath)
	if err != nil {
		zapLog.Fatal("template registry load failed",
			zap.String("path", cfg.Template.RegistryPath),
			zap.Error(err))
	}
	zapLog.Info("Template registry loaded",
		zap.Int("templates", len(templateRegistry.Templates)))

	// --- Init External Service Clients ---
	crmClient := zoho.NewCRMClient(cfg.Integrations.Zoho.OAuthToken)

	var sesClient *aws.SESClient
	var snsClient *aws.SNSClient
	if cfg.Notify.Email.Enabled {
		sesClient, err = aws.NewSESClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
	}
	if cfg.Notify.SMS.Enabled {
		snsClient, err = aws.NewSNSClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
	}

	zapLog.Info("All external service clients initialized")

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	// 1. Infrastructure (1)
	if wcfg := config.GetWorkerConfig(cfg, vts.TaskType); wcfg.Enabled {
		handler := vts.NewHandler(
			&vts.Config{Timeout: config.GetDuration(wcfg.Timeout)},
			pg.DB, log,
		)
		workers = append(workers, startWorker(zeebeClient, vts.TaskType, wcfg, handler.Handle, zapLog))
	}

	// 2. Data Access (4)
	if wcfg := config.GetWorkerConfig(cfg, slp.TaskType); wcfg.Enabled {
		handler := slp.NewHandler(
			&slp.Config{
				BaseURL:  cfg.APIs.Listing.BaseURL,
				APIKey:   cfg.APIs.Listing.APIKey,
				CacheTTL: 15 * time.Minute,
				Timeout:  config.GetDuration(cfg.APIs.Listing.Timeout),
			},
			commonhttp.NewClient(config.GetDuration(cfg.APIs.Listing.Timeout)),
			redis.Client, log,
		)
		workers = append(workers, startWorker(zeebeClient, slp.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, fss.TaskType); wcfg.Enabled {
		handler := fss.NewHandler(
			&fss.Config{
				SearchAPIBaseURL: cfg.APIs.WebSearch.BaseURL,
				SearchAPIKey:     cfg.APIs.WebSearch.APIKey,
				SearchEngineID:   cfg.APIs.WebSearch.EngineID,
				MaxResults:       10,
				Timeout:          config.GetDuration(cfg.APIs.WebSearch.Timeout),
			},
			commonhttp.NewClient(config.GetDuration(cfg.APIs.WebSearch.Timeout)),
			log,
		)
		workers = append(workers, startWorker(zeebeClient, fss.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, fbb.TaskType); wcfg.Enabled {
		handler := fbb.NewHandler(
			&fbb.Config{Timeout: config.GetDuration(wcfg.Timeout)},
			pg.DB, redis.Client, log,
		)
		workers = append(workers, startWorker(zeebeClient, fbb.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, qbd.TaskType); wcfg.Enabled {
		handler := qbd.NewHandler(
			&qbd.Config{
				IndexName: cfg.Database.Elasticsearch.DirectoryIndex,
				Timeout:   config.GetDuration(wcfg.Timeout),
			},
			esClient.Client, log,
		)
		workers = append(workers, startWorker(zeebeClient, qbd.TaskType, wcfg, handler.Handle, zapLog))
	}

	// 3. Site Planning (5)
	if wcfg := config.GetWorkerConfig(cfg, sbd.TaskType); wcfg.Enabled {
		handler := sbd.NewHandler(
			&sbd.Config{Timeout: config.GetDuration(wcfg.Timeout)},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, sbd.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, gsq.TaskType); wcfg.Enabled {
		handler := gsq.NewHandler(
			&gsq.Config{Timeout: config.GetDuration(wcfg.Timeout)},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, gsq.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, rps.TaskType); wcfg.Enabled {
		handler := rps.NewHandler(
			&rps.Config{Timeout: config.GetDuration(wcfg.Timeout)},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, rps.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, spt.TaskType); wcfg.Enabled {
		handler := spt.NewHandler(
			&spt.Config{
				RegistryPath: cfg.Template.RegistryPath,
				Timeout:      config.GetDuration(wcfg.Timeout),
			},
			templateRegistry, log,
		)
		workers = append(workers, startWorker(zeebeClient, spt.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, ssp.TaskType); wcfg.Enabled {
		handler := ssp.NewHandler(
			&ssp.Config{Timeout: config.GetDuration(wcfg.Timeout)},
			pg.DB, log,
		)
		workers = append(workers, startWorker(zeebeClient, ssp.TaskType, wcfg, handler.Handle, zapLog))
	}

	// 4. Integrations (2)
	if wcfg := config.GetWorkerConfig(cfg, cls.TaskType); wcfg.Enabled {
		handler := cls.NewHandler(
			&cls.Config{
				LeadSource: cfg.Integrations.Zoho.LeadSource,
				Timeout:    config.GetDuration(wcfg.Timeout),
			},
			crmClient, log,
		)
		workers = append(workers, startWorker(zeebeClient, cls.TaskType, wcfg, handler.Handle, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, soq.TaskType); wcfg.Enabled {
		handler := soq.NewHandler(
			&soq.Config{
				FromEmail:    cfg.Notify.Email.FromEmail,
				EmailEnabled: cfg.Notify.Email.Enabled,
				SMSEnabled:   cfg.Notify.SMS.Enabled,
				SMSSenderID:  cfg.Integrations.AWS.SNS.SMSSenderID,
				Timeout:      config.GetDuration(wcfg.Timeout),
			},
			sesClient, snsClient, log,
		)
		workers = append(workers, startWorker(zeebeClient, soq.TaskType, wcfg, handler.Handle, zapLog))
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler camunda.HandlerFunc, log *zap.Logger) *camunda.CamundaWorker {
	w := camunda.NewWorker(client, taskType, wcfg.MaxJobsActive, handler, log)

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
	return w
}
