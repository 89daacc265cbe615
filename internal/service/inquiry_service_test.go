package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/denwadesk/denwa-backend/internal/config"
	"github.com/denwadesk/denwa-backend/internal/domain"
	"github.com/denwadesk/denwa-backend/internal/fields"
)

// --- Mock InquiryRepository ---

type mockInquiryRepo struct {
	mock.Mock
}

func (m *mockInquiryRepo) Search(ctx context.Context, projectID int, req *domain.InquirySearchRequest) ([]*domain.InquiryHistory, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InquiryHistory), args.Error(1)
}

func (m *mockInquiryRepo) ListByCustomerKey(ctx context.Context, projectID int, customerKey string) ([]*domain.InquiryHistory, error) {
	args := m.Called(ctx, projectID, customerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InquiryHistory), args.Error(1)
}

func (m *mockInquiryRepo) GetByID(ctx context.Context, inquiryID int) (*domain.InquiryHistory, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InquiryHistory), args.Error(1)
}

func (m *mockInquiryRepo) Insert(ctx context.Context, inquiry *domain.InquiryHistory) (int, error) {
	args := m.Called(ctx, inquiry)
	return args.Int(0), args.Error(1)
}

func (m *mockInquiryRepo) Update(ctx context.Context, inquiry *domain.InquiryHistory) error {
	return m.Called(ctx, inquiry).Error(0)
}

// --- Mock InquiryLogRepository ---

type mockInquiryLogRepo struct {
	mock.Mock
}

func (m *mockInquiryLogRepo) Insert(ctx context.Context, log *domain.InquiryHistoryLog) (int, error) {
	args := m.Called(ctx, log)
	return args.Int(0), args.Error(1)
}

func (m *mockInquiryLogRepo) ListByInquiryID(ctx context.Context, inquiryID int) ([]*domain.InquiryHistoryLog, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InquiryHistoryLog), args.Error(1)
}

// --- Mock FieldDefinitionRepository ---

type mockFieldRepo struct {
	mock.Mock
}

func (m *mockFieldRepo) ListEnabled(ctx context.Context, projectID int) ([]*domain.CustomFieldDefinition, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CustomFieldDefinition), args.Error(1)
}

func (m *mockFieldRepo) ListSearchable(ctx context.Context, projectID int) ([]*domain.CustomFieldDefinition, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CustomFieldDefinition), args.Error(1)
}

func (m *mockFieldRepo) GetByID(ctx context.Context, fieldID int) (*domain.CustomFieldDefinition, error) {
	args := m.Called(ctx, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomFieldDefinition), args.Error(1)
}

func (m *mockFieldRepo) Insert(ctx context.Context, def *domain.CustomFieldDefinition) (int, error) {
	args := m.Called(ctx, def)
	return args.Int(0), args.Error(1)
}

func (m *mockFieldRepo) Update(ctx context.Context, def *domain.CustomFieldDefinition) error {
	return m.Called(ctx, def).Error(0)
}

// --- Mock CategoryRepository / StatusRepository ---

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) ListActive(ctx context.Context, projectID int) ([]*domain.CategoryMaster, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CategoryMaster), args.Error(1)
}

type mockStatusRepo struct {
	mock.Mock
}

func (m *mockStatusRepo) ListActive(ctx context.Context, projectID int) ([]*domain.StatusMaster, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusMaster), args.Error(1)
}

// --- Tests ---

func strPtr(s string) *string {
	return &s
}

type inquiryMocks struct {
	inquiryRepo  *mockInquiryRepo
	logRepo      *mockInquiryLogRepo
	fieldRepo    *mockFieldRepo
	categoryRepo *mockCategoryRepo
	statusRepo   *mockStatusRepo
	operatorRepo *mockOperatorRepo
}

func newInquiryService(t *testing.T) (InquiryService, *inquiryMocks) {
	t.Helper()
	return newInquiryServiceWithConfig(t, config.CustomFieldSearchConfig{Enabled: true})
}

func newInquiryServiceWithConfig(t *testing.T, customFieldSearch config.CustomFieldSearchConfig) (InquiryService, *inquiryMocks) {
	t.Helper()
	m := &inquiryMocks{
		inquiryRepo:  new(mockInquiryRepo),
		logRepo:      new(mockInquiryLogRepo),
		fieldRepo:    new(mockFieldRepo),
		categoryRepo: new(mockCategoryRepo),
		statusRepo:   new(mockStatusRepo),
		operatorRepo: new(mockOperatorRepo),
	}
	svc := NewInquiryService(m.inquiryRepo, m.logRepo, m.fieldRepo, m.categoryRepo, m.statusRepo, m.operatorRepo, customFieldSearch)
	return svc, m
}

func testSession() SessionState {
	return SessionState{
		SessionID: "test-session",
		Operator:  &domain.OperatorMaster{OperatorID: 10, ProjectID: 1, LoginID: "operator001", OperatorName: "山田 太郎", IsActive: true},
		Project:   &domain.ProjectMaster{ProjectID: 1, ProjectCode: "PRJ001", IsActive: true},
		LoginTime: time.Now(),
	}
}

func TestLoadEditor(t *testing.T) {
	svc, m := newInquiryService(t)

	m.categoryRepo.On("ListActive", mock.Anything, 1).Return([]*domain.CategoryMaster{
		{CategoryID: 1, ProjectID: 1, CategoryName: "商品について"},
	}, nil)
	m.statusRepo.On("ListActive", mock.Anything, 1).Return([]*domain.StatusMaster{
		{StatusID: 1, ProjectID: 1, StatusName: "対応中"},
		{StatusID: 2, ProjectID: 1, StatusName: "完了"},
	}, nil)
	m.fieldRepo.On("ListEnabled", mock.Anything, 1).Return([]*domain.CustomFieldDefinition{
		{ColumnNumber: 1, FieldName: "product", DisplayName: "製品名", FieldType: "Text"},
	}, nil)

	editor, err := svc.LoadEditor(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, editor.Categories, 1)
	assert.Len(t, editor.Statuses, 2)
	require.Len(t, editor.FieldSet.Fields, 1)
	assert.Equal(t, "製品名", editor.FieldSet.Fields[0].DisplayName)
}

func TestCreate(t *testing.T) {
	svc, m := newInquiryService(t)

	received := time.Date(2026, 1, 15, 10, 30, 0, 0, time.Local)
	fieldSet := fields.Build([]*domain.CustomFieldDefinition{
		{ColumnNumber: 1, FieldName: "product", DisplayName: "製品名", FieldType: "Text"},
	})
	fieldSet.ByColumn(1).SetValue("ルーターX")

	var stored *domain.InquiryHistory
	m.inquiryRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.InquiryHistory)
	}).Return(42, nil)

	key := "C0001"
	categoryID := 1
	id, err := svc.Create(context.Background(), testSession(), &InquiryInput{
		CustomerKey:      &key,
		CategoryID:       &categoryID,
		InquiryContent:   "電源が入らない",
		ReceivedDateTime: received,
	}, fieldSet)

	require.NoError(t, err)
	assert.Equal(t, 42, id)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.ProjectID)
	assert.Equal(t, 10, stored.OperatorID)
	assert.Equal(t, 10, stored.CreatedBy)
	assert.Equal(t, received, stored.FirstReceivedDateTime)
	assert.Nil(t, stored.ResponseContent, "blank response stays NULL")
	require.NotNil(t, stored.CustomCol01)
	assert.Equal(t, "ルーターX", *stored.CustomCol01)
}

func TestCreate_RequiresLogin(t *testing.T) {
	svc, m := newInquiryService(t)

	_, err := svc.Create(context.Background(), SessionState{}, &InquiryInput{InquiryContent: "x"}, nil)

	assert.EqualError(t, err, "セッション情報が不正です。再ログインしてください。")
	m.inquiryRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_RequiresContent(t *testing.T) {
	svc, m := newInquiryService(t)

	_, err := svc.Create(context.Background(), testSession(), &InquiryInput{InquiryContent: "   "}, nil)

	assert.EqualError(t, err, "問合せ内容を入力してください。")
	m.inquiryRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_RequiredFieldBlank(t *testing.T) {
	svc, m := newInquiryService(t)

	fieldSet := fields.Build([]*domain.CustomFieldDefinition{
		{ColumnNumber: 1, FieldName: "product", DisplayName: "製品名", FieldType: "Text", IsRequired: true},
	})

	_, err := svc.Create(context.Background(), testSession(), &InquiryInput{InquiryContent: "電源が入らない"}, fieldSet)

	assert.EqualError(t, err, "「製品名」を入力してください。")
	m.inquiryRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdate_SnapshotsBeforeWrite(t *testing.T) {
	svc, m := newInquiryService(t)

	oldResponse := "初回回答"
	original := &domain.InquiryHistory{
		InquiryID:             7,
		ProjectID:             1,
		OperatorID:            3,
		InquiryContent:        "電源が入らない",
		ResponseContent:       &oldResponse,
		FirstReceivedDateTime: time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local),
		CreatedAt:             time.Date(2026, 1, 10, 9, 5, 0, 0, time.Local),
		CreatedBy:             3,
	}

	var order []string
	var snapshot *domain.InquiryHistoryLog
	var updated *domain.InquiryHistory

	m.inquiryRepo.On("GetByID", mock.Anything, 7).Return(original, nil)
	m.logRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		order = append(order, "snapshot")
		snapshot = args.Get(1).(*domain.InquiryHistoryLog)
	}).Return(1, nil)
	m.inquiryRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		order = append(order, "update")
		updated = args.Get(1).(*domain.InquiryHistory)
	}).Return(nil)

	err := svc.Update(context.Background(), testSession(), 7, &InquiryInput{
		InquiryContent:  "電源が入らない",
		ResponseContent: "部品交換で解決",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"snapshot", "update"}, order)

	// the snapshot holds the pre-update values, attributed to the updater
	require.NotNil(t, snapshot)
	assert.Equal(t, 7, snapshot.InquiryID)
	assert.Equal(t, "初回回答", *snapshot.ResponseContent)
	assert.Equal(t, 10, snapshot.UpdatedBy)

	require.NotNil(t, updated)
	assert.Equal(t, "部品交換で解決", *updated.ResponseContent)
	assert.Equal(t, 10, *updated.UpdatedBy)
	require.NotNil(t, updated.UpdatedDateTime)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt, "creation metadata is preserved")
	assert.Equal(t, original.CreatedBy, updated.CreatedBy)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, m := newInquiryService(t)

	m.inquiryRepo.On("GetByID", mock.Anything, 999).Return(nil, nil)

	err := svc.Update(context.Background(), testSession(), 999, &InquiryInput{InquiryContent: "x"}, nil)

	assert.Error(t, err)
	m.logRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	m.inquiryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSearch_ResolvesUpdaterNames(t *testing.T) {
	svc, m := newInquiryService(t)

	updater3, updater5 := 3, 5
	results := []*domain.InquiryHistory{
		{InquiryID: 1, UpdatedBy: &updater3},
		{InquiryID: 2, UpdatedBy: &updater5},
		{InquiryID: 3},
		{InquiryID: 4, UpdatedBy: &updater3},
	}
	m.inquiryRepo.On("Search", mock.Anything, 1, mock.Anything).Return(results, nil)
	m.operatorRepo.On("FindNamesByIDs", mock.Anything, mock.MatchedBy(func(ids []int) bool {
		return len(ids) == 2
	})).Return(map[int]string{3: "佐藤 花子", 5: "鈴木 一郎"}, nil)

	out, err := svc.Search(context.Background(), 1, &domain.InquirySearchRequest{})

	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "佐藤 花子", out[0].UpdatedByName)
	assert.Equal(t, "鈴木 一郎", out[1].UpdatedByName)
	assert.Empty(t, out[2].UpdatedByName)
	assert.Equal(t, "佐藤 花子", out[3].UpdatedByName)
}

func TestSearch_CustomFieldConditionsGatedByConfig(t *testing.T) {
	svc, m := newInquiryServiceWithConfig(t, config.CustomFieldSearchConfig{Enabled: false})

	// with the feature off, entered conditions are dropped before the query
	m.inquiryRepo.On("Search", mock.Anything, 1, mock.MatchedBy(func(req *domain.InquirySearchRequest) bool {
		return len(req.CustomFieldConditions) == 0 && *req.Keyword == "電源"
	})).Return([]*domain.InquiryHistory{}, nil)

	req := &domain.InquirySearchRequest{
		Keyword:               strPtr("電源"),
		CustomFieldConditions: map[int]string{2: "メール"},
	}
	_, err := svc.Search(context.Background(), 1, req)

	require.NoError(t, err)
	m.inquiryRepo.AssertExpectations(t)
	assert.Len(t, req.CustomFieldConditions, 1, "the caller's request is not mutated")
}

func TestSearch_CustomFieldConditionsEnabled(t *testing.T) {
	svc, m := newInquiryService(t)

	m.inquiryRepo.On("Search", mock.Anything, 1, mock.MatchedBy(func(req *domain.InquirySearchRequest) bool {
		return req.CustomFieldConditions[2] == "メール"
	})).Return([]*domain.InquiryHistory{}, nil)

	_, err := svc.Search(context.Background(), 1, &domain.InquirySearchRequest{
		CustomFieldConditions: map[int]string{2: "メール"},
	})

	require.NoError(t, err)
	m.inquiryRepo.AssertExpectations(t)
}

func TestSearch_NoUpdatersSkipsLookup(t *testing.T) {
	svc, m := newInquiryService(t)

	m.inquiryRepo.On("Search", mock.Anything, 1, mock.Anything).Return([]*domain.InquiryHistory{{InquiryID: 1}}, nil)

	_, err := svc.Search(context.Background(), 1, &domain.InquirySearchRequest{})

	require.NoError(t, err)
	m.operatorRepo.AssertNotCalled(t, "FindNamesByIDs", mock.Anything, mock.Anything)
}

func TestHistory(t *testing.T) {
	svc, m := newInquiryService(t)

	m.logRepo.On("ListByInquiryID", mock.Anything, 7).Return([]*domain.InquiryHistoryLog{
		{LogID: 2, InquiryID: 7},
		{LogID: 1, InquiryID: 7},
	}, nil)

	logs, err := svc.History(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
