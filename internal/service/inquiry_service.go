package service

import (
	"context"
	"strings"
	"time"

	"github.com/denwadesk/denwa-backend/internal/common"
	"github.com/denwadesk/denwa-backend/internal/config"
	"github.com/denwadesk/denwa-backend/internal/domain"
	"github.com/denwadesk/denwa-backend/internal/fields"
	"github.com/denwadesk/denwa-backend/internal/repository"
)

// InquiryInput carries the operator-entered values of one inquiry form.
type InquiryInput struct {
	CustomerKey      *string
	CategoryID       *int
	StatusID         *int
	InquiryContent   string
	ResponseContent  string
	ReceivedDateTime time.Time
}

// InquiryEditor bundles everything the edit surface needs for one project:
// ordered lookup lists and the project's custom field set.
type InquiryEditor struct {
	Categories []*domain.CategoryMaster
	Statuses   []*domain.StatusMaster
	FieldSet   *fields.FieldSet
}

// InquiryService inquiry create/update/search business logic
type InquiryService interface {
	LoadEditor(ctx context.Context, projectID int) (*InquiryEditor, error)
	Create(ctx context.Context, session SessionState, input *InquiryInput, fieldSet *fields.FieldSet) (int, error)
	Update(ctx context.Context, session SessionState, inquiryID int, input *InquiryInput, fieldSet *fields.FieldSet) error
	Search(ctx context.Context, projectID int, req *domain.InquirySearchRequest) ([]*domain.InquiryHistory, error)
	ListByCustomerKey(ctx context.Context, projectID int, customerKey string) ([]*domain.InquiryHistory, error)
	GetByID(ctx context.Context, inquiryID int) (*domain.InquiryHistory, error)
	History(ctx context.Context, inquiryID int) ([]*domain.InquiryHistoryLog, error)
}

type inquiryService struct {
	inquiryRepo       repository.InquiryRepository
	logRepo           repository.InquiryLogRepository
	fieldRepo         repository.FieldDefinitionRepository
	categoryRepo      repository.CategoryRepository
	statusRepo        repository.StatusRepository
	operatorRepo      repository.OperatorRepository
	customFieldSearch config.CustomFieldSearchConfig
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(
	inquiryRepo repository.InquiryRepository,
	logRepo repository.InquiryLogRepository,
	fieldRepo repository.FieldDefinitionRepository,
	categoryRepo repository.CategoryRepository,
	statusRepo repository.StatusRepository,
	operatorRepo repository.OperatorRepository,
	customFieldSearch config.CustomFieldSearchConfig,
) InquiryService {
	return &inquiryService{
		inquiryRepo:       inquiryRepo,
		logRepo:           logRepo,
		fieldRepo:         fieldRepo,
		categoryRepo:      categoryRepo,
		statusRepo:        statusRepo,
		operatorRepo:      operatorRepo,
		customFieldSearch: customFieldSearch,
	}
}

// LoadEditor loads the lookup lists and custom field set for one project
func (s *inquiryService) LoadEditor(ctx context.Context, projectID int) (*InquiryEditor, error) {
	categories, err := s.categoryRepo.ListActive(ctx, projectID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.statusRepo.ListActive(ctx, projectID)
	if err != nil {
		return nil, err
	}
	defs, err := s.fieldRepo.ListEnabled(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &InquiryEditor{
		Categories: categories,
		Statuses:   statuses,
		FieldSet:   fields.Build(defs),
	}, nil
}

// Create validates and stores a new inquiry, returning the generated id.
// Custom columns without an enabled definition stay empty on new rows.
func (s *inquiryService) Create(ctx context.Context, session SessionState, input *InquiryInput, fieldSet *fields.FieldSet) (int, error) {
	if !session.IsLoggedIn() {
		return 0, common.ErrSessionInvalid
	}
	if err := validateInput(input, fieldSet); err != nil {
		return 0, err
	}

	now := time.Now()
	inquiry := &domain.InquiryHistory{
		ProjectID:             session.Project.ProjectID,
		CustomerKey:           input.CustomerKey,
		OperatorID:            session.Operator.OperatorID,
		CategoryID:            input.CategoryID,
		StatusID:              input.StatusID,
		InquiryContent:        input.InquiryContent,
		ResponseContent:       optional(input.ResponseContent),
		FirstReceivedDateTime: input.ReceivedDateTime,
		CreatedAt:             now,
		CreatedBy:             session.Operator.OperatorID,
	}
	if fieldSet != nil {
		fieldSet.Apply(inquiry)
	}

	return s.inquiryRepo.Insert(ctx, inquiry)
}

// Update snapshots the stored row into the audit log, then applies the new
// values. The two statements are not one transaction: a crash in between
// can leave an extra snapshot, never a lost one.
func (s *inquiryService) Update(ctx context.Context, session SessionState, inquiryID int, input *InquiryInput, fieldSet *fields.FieldSet) error {
	if !session.IsLoggedIn() {
		return common.ErrSessionInvalid
	}
	if err := validateInput(input, fieldSet); err != nil {
		return err
	}

	original, err := s.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return err
	}
	if original == nil {
		return common.ErrNotFound
	}

	now := time.Now()
	snapshot := domain.SnapshotInquiry(original, session.Operator.OperatorID, now)
	if _, err := s.logRepo.Insert(ctx, snapshot); err != nil {
		return err
	}

	updated := *original
	updated.CustomerKey = input.CustomerKey
	updated.CategoryID = input.CategoryID
	updated.StatusID = input.StatusID
	updated.InquiryContent = input.InquiryContent
	updated.ResponseContent = optional(input.ResponseContent)
	updated.UpdatedDateTime = &now
	updated.UpdatedBy = &session.Operator.OperatorID
	if fieldSet != nil {
		fieldSet.Apply(&updated)
	}

	return s.inquiryRepo.Update(ctx, &updated)
}

// Search runs the filtered history search and resolves updater display
// names in one batch afterwards. Custom-column conditions are honored only
// when custom field search is enabled in configuration.
func (s *inquiryService) Search(ctx context.Context, projectID int, req *domain.InquirySearchRequest) ([]*domain.InquiryHistory, error) {
	if req != nil && len(req.CustomFieldConditions) > 0 && !s.customFieldSearch.Enabled {
		filtered := *req
		filtered.CustomFieldConditions = nil
		req = &filtered
	}

	results, err := s.inquiryRepo.Search(ctx, projectID, req)
	if err != nil {
		return nil, err
	}
	if err := s.resolveUpdaterNames(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// ListByCustomerKey returns one customer's inquiries, updater names resolved
func (s *inquiryService) ListByCustomerKey(ctx context.Context, projectID int, customerKey string) ([]*domain.InquiryHistory, error) {
	results, err := s.inquiryRepo.ListByCustomerKey(ctx, projectID, customerKey)
	if err != nil {
		return nil, err
	}
	if err := s.resolveUpdaterNames(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID finds one inquiry; a missing row is (nil, nil)
func (s *inquiryService) GetByID(ctx context.Context, inquiryID int) (*domain.InquiryHistory, error) {
	return s.inquiryRepo.GetByID(ctx, inquiryID)
}

// History returns an inquiry's audit snapshots, newest first
func (s *inquiryService) History(ctx context.Context, inquiryID int) ([]*domain.InquiryHistoryLog, error) {
	return s.logRepo.ListByInquiryID(ctx, inquiryID)
}

// resolveUpdaterNames batches the distinct updater ids into one lookup
// instead of joining or querying per row.
func (s *inquiryService) resolveUpdaterNames(ctx context.Context, results []*domain.InquiryHistory) error {
	distinct := make(map[int]struct{})
	for _, h := range results {
		if h.UpdatedBy != nil {
			distinct[*h.UpdatedBy] = struct{}{}
		}
	}
	if len(distinct) == 0 {
		return nil
	}

	ids := make([]int, 0, len(distinct))
	for id := range distinct {
		ids = append(ids, id)
	}
	names, err := s.operatorRepo.FindNamesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, h := range results {
		if h.UpdatedBy != nil {
			h.UpdatedByName = names[*h.UpdatedBy]
		}
	}
	return nil
}

func validateInput(input *InquiryInput, fieldSet *fields.FieldSet) error {
	if strings.TrimSpace(input.InquiryContent) == "" {
		return common.ErrInquiryContentRequired
	}
	if fieldSet != nil {
		if err := fieldSet.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
