// Command export writes inquiry histories of one project to a CSV file
// (UTF-8 with BOM, fixed column order).
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/denwadesk/denwa-backend/internal/config"
	"github.com/denwadesk/denwa-backend/internal/database"
	"github.com/denwadesk/denwa-backend/internal/domain"
	"github.com/denwadesk/denwa-backend/internal/repository"
	"github.com/denwadesk/denwa-backend/internal/service"
	"github.com/denwadesk/denwa-backend/pkg/logger"
)

const dateFormat = "2006-01-02"

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	projectID := flag.Int("project", 0, "project id (required)")
	out := flag.String("out", "", "output file path (default: 問合せ履歴_<timestamp>.csv)")
	from := flag.String("from", "", "first received date lower bound (YYYY-MM-DD)")
	to := flag.String("to", "", "first received date upper bound (YYYY-MM-DD)")
	keyword := flag.String("keyword", "", "keyword matched against inquiry or response content")
	flag.Parse()

	if *projectID <= 0 {
		log.Fatal("-project is required")
	}

	config.LoadDotEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitStructured(cfg.Env)

	stores, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open stores: %v", err)
	}
	defer stores.Close()

	req := &domain.InquirySearchRequest{}
	if *from != "" {
		t, err := time.ParseInLocation(dateFormat, *from, time.Local)
		if err != nil {
			log.Fatalf("Invalid -from date: %v", err)
		}
		req.StartDate = &t
	}
	if *to != "" {
		t, err := time.ParseInLocation(dateFormat, *to, time.Local)
		if err != nil {
			log.Fatalf("Invalid -to date: %v", err)
		}
		req.EndDate = &t
	}
	if *keyword != "" {
		req.Keyword = keyword
	}

	inquiryService := service.NewInquiryService(
		repository.NewInquiryRepository(stores.History()),
		repository.NewInquiryLogRepository(stores.History()),
		repository.NewFieldDefinitionRepository(stores.Master()),
		repository.NewCategoryRepository(stores.Master()),
		repository.NewStatusRepository(stores.Master()),
		repository.NewOperatorRepository(stores.Master()),
		cfg.CustomFieldSearch,
	)
	exportService := service.NewExportService()

	ctx := context.Background()
	results, err := inquiryService.Search(ctx, *projectID, req)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	path := *out
	if path == "" {
		path = exportService.DefaultFileName(time.Now())
	}
	if err := exportService.ExportFile(path, results); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	logger.GetLogger().Info().
		Int("project_id", *projectID).
		Int("rows", len(results)).
		Str("file", path).
		Msg("export complete")
}
