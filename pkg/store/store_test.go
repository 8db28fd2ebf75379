package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewWithClock(fixedClock())
	s.Hydrate(Payload{
		Customers: []models.Customer{
			{ID: 1, CompanyName: "株式会社テスト", ContactName: "山田太郎", Email: "yamada@test.co.jp", Status: models.CustomerStatusActive, CreatedDate: "2026-01-15"},
			{ID: 3, CompanyName: "サンプル商事", ContactName: "佐藤花子", Email: "sato@sample.co.jp", Status: models.CustomerStatusProspect, CreatedDate: "2026-02-01"},
		},
		Opportunities: []models.SalesOpportunity{
			{ID: 1, Title: "新規システム導入", CustomerID: 1, CustomerName: "株式会社テスト", Stage: "提案", Value: 5000000},
		},
	})
	return s
}

func TestStoreStartsLoading(t *testing.T) {
	s := New()
	status, loadErr := s.Status()
	assert.Equal(t, StatusLoading, status)
	assert.Empty(t, loadErr)
	assert.True(t, s.HydratedAt().IsZero())

	err := s.EnsureReady()
	require.Error(t, err)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrorKindNotReady, de.Kind)
}

func TestHydrateMakesStoreReady(t *testing.T) {
	s := seededStore(t)

	status, _ := s.Status()
	assert.Equal(t, StatusReady, status)
	assert.NoError(t, s.EnsureReady())
	assert.False(t, s.HydratedAt().IsZero())
	assert.Len(t, s.Customers(), 2)
}

func TestMarkLoadFailedKeepsPreviousData(t *testing.T) {
	s := seededStore(t)

	s.MarkLoadFailed(errors.New("fixture backend unreachable"))

	status, loadErr := s.Status()
	assert.Equal(t, StatusLoadFailed, status)
	assert.Equal(t, "fixture backend unreachable", loadErr)

	// Already-hydrated data keeps serving
	assert.NoError(t, s.EnsureReady())
	assert.Len(t, s.Customers(), 2)
}

func TestMarkLoadFailedBeforeFirstHydrate(t *testing.T) {
	s := New()
	s.MarkLoadFailed(errors.New("boom"))

	err := s.EnsureReady()
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrorKindNotReady, de.Kind)
}

func TestCreateCustomer(t *testing.T) {
	s := seededStore(t)

	created, err := s.UpsertCustomer(models.CustomerDraft{
		CompanyName: "新規株式会社",
		ContactName: "鈴木一郎",
		Email:       "suzuki@shinki.co.jp",
		Status:      models.CustomerStatusProspect,
	}, nil)
	require.NoError(t, err)

	// Highest existing id is 3, so the new record gets 4
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "2026-08-30", created.CreatedDate)
	assert.Equal(t, "2026-08-30", created.LastContact)
	assert.Len(t, s.Customers(), 3)
}

func TestCreateCustomerAllocatesNextID(t *testing.T) {
	s := NewWithClock(fixedClock())
	s.Hydrate(Payload{
		Customers: []models.Customer{
			{ID: 1, CompanyName: "A社", ContactName: "a", Email: "a@a.jp"},
		},
	})

	created, err := s.UpsertCustomer(models.CustomerDraft{
		CompanyName: "B社",
		ContactName: "b",
		Email:       "b@b.jp",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestCreateCustomerRejectsMissingFields(t *testing.T) {
	s := seededStore(t)

	tests := []struct {
		name  string
		draft models.CustomerDraft
		field string
	}{
		{"missing company name", models.CustomerDraft{ContactName: "x", Email: "x@x.jp"}, "companyName"},
		{"missing contact name", models.CustomerDraft{CompanyName: "X社", Email: "x@x.jp"}, "contactName"},
		{"missing email", models.CustomerDraft{CompanyName: "X社", ContactName: "x"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UpsertCustomer(tt.draft, nil)
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, ErrorKindValidation, de.Kind)
			assert.Equal(t, tt.field, de.Field)

			// Rejected mutations leave the collection unchanged
			assert.Len(t, s.Customers(), 2)
		})
	}
}

func TestUpdateCustomerPreservesIdentityFields(t *testing.T) {
	s := seededStore(t)

	id := 1
	updated, err := s.UpsertCustomer(models.CustomerDraft{
		CompanyName: "株式会社テスト改",
		ContactName: "山田太郎",
		Email:       "yamada@test.co.jp",
		Status:      models.CustomerStatusContracted,
	}, &id)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "2026-01-15", updated.CreatedDate, "createdDate survives edits")
	assert.Equal(t, "2026-08-30", updated.LastContact, "lastContact is restamped")
	assert.Equal(t, "株式会社テスト改", updated.CompanyName)

	stored, ok := s.GetCustomer(1)
	require.True(t, ok)
	assert.Equal(t, updated, stored)
	assert.Len(t, s.Customers(), 2)
}

func TestUpdateCustomerUnknownID(t *testing.T) {
	s := seededStore(t)

	id := 99
	_, err := s.UpsertCustomer(models.CustomerDraft{
		CompanyName: "X社",
		ContactName: "x",
		Email:       "x@x.jp",
	}, &id)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrorKindNotFound, de.Kind)
}

func TestAddOpportunity(t *testing.T) {
	s := seededStore(t)

	opp, err := s.AddOpportunity(models.OpportunityDraft{
		Title:       "保守契約更新",
		CustomerID:  3,
		Value:       1200000,
		Stage:       "交渉",
		Probability: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, opp.ID)
	assert.Equal(t, "サンプル商事", opp.CustomerName, "customer name is snapshotted from the referenced customer")
	assert.Equal(t, "2026-08-30", opp.CreatedDate)
	assert.Equal(t, "2026-08-30", opp.LastActivity)
	assert.Len(t, s.Opportunities(), 2)
}

func TestOpportunityNameSnapshotDoesNotFollowRenames(t *testing.T) {
	s := seededStore(t)

	opp, err := s.AddOpportunity(models.OpportunityDraft{
		Title:      "案件A",
		CustomerID: 1,
		Value:      100,
	})
	require.NoError(t, err)
	require.Equal(t, "株式会社テスト", opp.CustomerName)

	id := 1
	_, err = s.UpsertCustomer(models.CustomerDraft{
		CompanyName: "改名後株式会社",
		ContactName: "山田太郎",
		Email:       "yamada@test.co.jp",
	}, &id)
	require.NoError(t, err)

	for _, o := range s.Opportunities() {
		if o.ID == opp.ID {
			assert.Equal(t, "株式会社テスト", o.CustomerName)
		}
	}
}

func TestAddOpportunityRejectsUnknownCustomer(t *testing.T) {
	s := seededStore(t)

	_, err := s.AddOpportunity(models.OpportunityDraft{
		Title:      "幽霊顧客案件",
		CustomerID: 42,
		Value:      100,
	})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrorKindUnknownReference, de.Kind)
	assert.Equal(t, "customerId", de.Field)
	assert.Len(t, s.Opportunities(), 1)
}

func TestAddOpportunityValidation(t *testing.T) {
	s := seededStore(t)

	tests := []struct {
		name  string
		draft models.OpportunityDraft
		field string
	}{
		{"missing title", models.OpportunityDraft{CustomerID: 1, Value: 100}, "title"},
		{"missing customer", models.OpportunityDraft{Title: "x", Value: 100}, "customerId"},
		{"zero value", models.OpportunityDraft{Title: "x", CustomerID: 1}, "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddOpportunity(tt.draft)
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, ErrorKindValidation, de.Kind)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestAddOpportunityClampsProbability(t *testing.T) {
	s := seededStore(t)

	high, err := s.AddOpportunity(models.OpportunityDraft{Title: "a", CustomerID: 1, Value: 1, Probability: 150})
	require.NoError(t, err)
	assert.Equal(t, 100, high.Probability)

	low, err := s.AddOpportunity(models.OpportunityDraft{Title: "b", CustomerID: 1, Value: 1, Probability: -10})
	require.NoError(t, err)
	assert.Equal(t, 0, low.Probability)
}

func TestAddCalendarEvent(t *testing.T) {
	s := seededStore(t)

	event, err := s.AddCalendarEvent(models.CalendarEventDraft{
		Title:         "定例訪問",
		Date:          "2026-09-01",
		AssignedSales: "田中",
		Type:          models.EventTypeVisit,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, event.ID)
	assert.Equal(t, models.EventStatusScheduled, event.Status)
	assert.Equal(t, models.EventTypeVisit, event.Type)
	assert.Nil(t, event.CustomerName)
}

func TestAddCalendarEventResolvesCustomerName(t *testing.T) {
	s := seededStore(t)

	typed := "手入力の名前"
	customerID := 1
	event, err := s.AddCalendarEvent(models.CalendarEventDraft{
		Title:         "商談",
		Date:          "2026-09-02",
		AssignedSales: "田中",
		CustomerID:    &customerID,
		CustomerName:  &typed,
	})
	require.NoError(t, err)

	// The linked customer's company name wins over the free-typed one
	require.NotNil(t, event.CustomerName)
	assert.Equal(t, "株式会社テスト", *event.CustomerName)
}

func TestAddCalendarEventKeepsFreeTypedName(t *testing.T) {
	s := seededStore(t)

	typed := "飛び込み先"
	event, err := s.AddCalendarEvent(models.CalendarEventDraft{
		Title:         "飛び込み営業",
		Date:          "2026-09-03",
		AssignedSales: "田中",
		CustomerName:  &typed,
	})
	require.NoError(t, err)
	require.NotNil(t, event.CustomerName)
	assert.Equal(t, "飛び込み先", *event.CustomerName)
}

func TestAddCalendarEventUnknownCustomer(t *testing.T) {
	s := seededStore(t)

	customerID := 42
	_, err := s.AddCalendarEvent(models.CalendarEventDraft{
		Title:         "x",
		Date:          "2026-09-01",
		AssignedSales: "田中",
		CustomerID:    &customerID,
	})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrorKindUnknownReference, de.Kind)
	assert.Empty(t, s.Events())
}

func TestAddCalendarEventDefaultsTypeToOther(t *testing.T) {
	s := seededStore(t)

	event, err := s.AddCalendarEvent(models.CalendarEventDraft{
		Title:         "未分類の予定",
		Date:          "2026-09-05",
		AssignedSales: "田中",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventTypeOther, event.Type)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := seededStore(t)

	customers := s.Customers()
	customers[0].CompanyName = "書き換え"

	stored, ok := s.GetCustomer(customers[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "書き換え", stored.CompanyName)
}

func TestHydrateReplacesWholesale(t *testing.T) {
	s := seededStore(t)

	s.Hydrate(Payload{
		Customers: []models.Customer{
			{ID: 10, CompanyName: "入替株式会社", ContactName: "新井", Email: "arai@irekae.co.jp"},
		},
	})

	assert.Len(t, s.Customers(), 1)
	assert.Empty(t, s.Opportunities())
}
