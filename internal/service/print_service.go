package service

import (
	"context"
	"time"

	"github.com/denwadesk/denwa-backend/internal/domain"
	"github.com/denwadesk/denwa-backend/internal/fields"
	"github.com/denwadesk/denwa-backend/internal/repository"
)

// missingValue is printed where a configured column is absent or NULL.
const missingValue = "-"

// LabeledValue is one label/value pair on the printed document.
type LabeledValue struct {
	Label string
	Value string
}

// InquiryPrintData is the structured document model handed to an external
// renderer. The core assembles it; rendering is not this system's concern.
type InquiryPrintData struct {
	ReceivedDateTime time.Time
	OperatorName     string
	CategoryName     string
	StatusName       string
	CustomerKey      string
	InquiryContent   string
	ResponseContent  string
	CustomFields     []LabeledValue
	CustomerFields   []LabeledValue
}

// PrintService assembles print data for one inquiry
type PrintService interface {
	BuildPrintData(ctx context.Context, inquiry *domain.InquiryHistory) (*InquiryPrintData, error)
}

type printService struct {
	customerRepo     repository.CustomerRepository
	reportConfigRepo repository.ReportConfigRepository
	fieldRepo        repository.FieldDefinitionRepository
	categoryRepo     repository.CategoryRepository
	statusRepo       repository.StatusRepository
	operatorRepo     repository.OperatorRepository
}

// NewPrintService creates a new PrintService
func NewPrintService(
	customerRepo repository.CustomerRepository,
	reportConfigRepo repository.ReportConfigRepository,
	fieldRepo repository.FieldDefinitionRepository,
	categoryRepo repository.CategoryRepository,
	statusRepo repository.StatusRepository,
	operatorRepo repository.OperatorRepository,
) PrintService {
	return &printService{
		customerRepo:     customerRepo,
		reportConfigRepo: reportConfigRepo,
		fieldRepo:        fieldRepo,
		categoryRepo:     categoryRepo,
		statusRepo:       statusRepo,
		operatorRepo:     operatorRepo,
	}
}

// BuildPrintData resolves display names, projects the inquiry's custom
// columns through the project's field definitions, and attaches up to three
// configured customer columns. Absent values render as "-".
func (s *printService) BuildPrintData(ctx context.Context, inquiry *domain.InquiryHistory) (*InquiryPrintData, error) {
	data := &InquiryPrintData{
		ReceivedDateTime: inquiry.FirstReceivedDateTime,
		CategoryName:     missingValue,
		StatusName:       missingValue,
		InquiryContent:   inquiry.InquiryContent,
		ResponseContent:  valueOr(inquiry.ResponseContent),
	}
	if inquiry.CustomerKey != nil {
		data.CustomerKey = *inquiry.CustomerKey
	}

	names, err := s.operatorRepo.FindNamesByIDs(ctx, []int{inquiry.OperatorID})
	if err != nil {
		return nil, err
	}
	data.OperatorName = names[inquiry.OperatorID]

	if inquiry.CategoryID != nil {
		categories, err := s.categoryRepo.ListActive(ctx, inquiry.ProjectID)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			if c.CategoryID == *inquiry.CategoryID {
				data.CategoryName = c.CategoryName
				break
			}
		}
	}
	if inquiry.StatusID != nil {
		statuses, err := s.statusRepo.ListActive(ctx, inquiry.ProjectID)
		if err != nil {
			return nil, err
		}
		for _, st := range statuses {
			if st.StatusID == *inquiry.StatusID {
				data.StatusName = st.StatusName
				break
			}
		}
	}

	defs, err := s.fieldRepo.ListEnabled(ctx, inquiry.ProjectID)
	if err != nil {
		return nil, err
	}
	fieldSet := fields.Build(defs)
	fieldSet.Load(inquiry)
	for _, f := range fieldSet.Fields {
		data.CustomFields = append(data.CustomFields, LabeledValue{
			Label: f.DisplayName,
			Value: valueOr(f.Value),
		})
	}

	if data.CustomerKey != "" {
		customerFields, err := s.customerFields(ctx, inquiry.ProjectID, data.CustomerKey)
		if err != nil {
			return nil, err
		}
		data.CustomerFields = customerFields
	}

	return data, nil
}

// customerFields resolves the configured customer display columns against
// the open customer record, capped at MaxReportCustomerColumns.
func (s *printService) customerFields(ctx context.Context, projectID int, customerKey string) ([]LabeledValue, error) {
	configs, err := s.reportConfigRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}
	if len(configs) > domain.MaxReportCustomerColumns {
		configs = configs[:domain.MaxReportCustomerColumns]
	}

	record, err := s.customerRepo.FetchRecord(ctx, customerKey)
	if err != nil {
		return nil, err
	}

	result := make([]LabeledValue, 0, len(configs))
	for _, cfg := range configs {
		value := missingValue
		if record != nil {
			if v, ok := record.GetString(cfg.ColumnName); ok && v != "" {
				value = v
			}
		}
		result = append(result, LabeledValue{Label: cfg.DisplayName, Value: value})
	}
	return result, nil
}

func valueOr(s *string) string {
	if s == nil || *s == "" {
		return missingValue
	}
	return *s
}
