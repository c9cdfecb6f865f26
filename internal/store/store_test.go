package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

var (
	owner = domain.SessionUser{Email: "owner@business.com", Name: "Rajesh Iyer", Role: domain.RoleOwner}
	sales = domain.SessionUser{Email: "sales@business.com", Name: "Amit Sharma", Role: domain.RoleSales}
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(storage.NewMemory(), opts...)
}

func TestAddLeadCascades(t *testing.T) {
	s := newTestStore(t)

	lead, err := s.AddLead(owner, domain.Lead{
		Name:    "Arjun Mehta",
		Company: "Tech India Solutions",
		Source:  "Website",
		Status:  domain.LeadStatusNew,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, owner.Email, lead.AssignedToID)
	assert.Equal(t, owner.Name, lead.AssignedTo)

	activities := s.ActivitiesFor(domain.EntityLead, lead.ID)
	require.Len(t, activities, 1)
	assert.Equal(t, domain.ActivityCreated, activities[0].Type)
	assert.Equal(t, "Lead created via Website", activities[0].Content)

	notifications := s.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "New Lead Added", notifications[0].Title)
	assert.Contains(t, notifications[0].Description, "Arjun Mehta")

	logs := s.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "CREATE_LEAD", logs[0].Action)
	assert.Equal(t, owner.Email, logs[0].UserID)
}

func TestAddLeadWithoutActorFallsBackToOwner(t *testing.T) {
	s := newTestStore(t)

	lead, err := s.AddLead(domain.SessionUser{}, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)
	assert.Equal(t, "owner@business.com", lead.AssignedToID)

	// system mutations never audit
	assert.Empty(t, s.AuditLogs())
}

func TestUpdateLeadStatusRecordsOldAndNew(t *testing.T) {
	s := newTestStore(t)
	lead, err := s.AddLead(owner, domain.Lead{Name: "A", Company: "B", Status: domain.LeadStatusNew})
	require.NoError(t, err)

	updated, err := s.UpdateLeadStatus(owner, lead.ID, domain.LeadStatusQualified)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusQualified, updated.Status)

	activities := s.ActivitiesFor(domain.EntityLead, lead.ID)
	require.Len(t, activities, 2)
	assert.Equal(t, domain.ActivityStatusChange, activities[0].Type)
	assert.Equal(t, "New", activities[0].OldValue)
	assert.Equal(t, "Qualified", activities[0].NewValue)
}

func TestUpdateLeadStatusUnknownID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateLeadStatus(owner, "missing", domain.LeadStatusLost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLeadSalesDenied(t *testing.T) {
	s := newTestStore(t)
	lead, err := s.AddLead(owner, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteLead(sales, lead.ID), ErrPermissionDenied)
	require.NoError(t, s.DeleteLead(owner, lead.ID))
	assert.Empty(t, s.Leads())
}

func TestConvertLeadToCustomer(t *testing.T) {
	s := newTestStore(t)
	lead, err := s.AddLead(owner, domain.Lead{
		Name:    "Sunil Kumar",
		Company: "Global Corp",
		Email:   "sunil@globalcorp.in",
		Phone:   "+91 98765 11111",
		City:    "Delhi",
		Value:   450000,
	})
	require.NoError(t, err)

	customer, err := s.ConvertLeadToCustomer(owner, lead.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(customer.ID, "cust-"))
	assert.Equal(t, lead.ID, customer.LeadID)
	assert.Equal(t, lead.Name, customer.Name)
	assert.Equal(t, lead.Value, customer.TotalRevenue)
	assert.Equal(t, domain.LoyaltyNew, customer.LoyaltyStatus)
	assert.Equal(t, []string{"New Customer"}, customer.Tags)

	converted, ok := s.LeadByID(lead.ID)
	require.True(t, ok)
	assert.Equal(t, domain.LeadStatusConverted, converted.Status)

	activities := s.ActivitiesFor(domain.EntityCustomer, customer.ID)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Content, "Converted from lead")
}

func TestConvertUnknownLead(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ConvertLeadToCustomer(owner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCustomerGetsPrefixedID(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.AddCustomer(domain.Customer{Name: "Priyanka Rao", Company: "Tech-Savy Labs"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(customer.ID, "cust-"))
	assert.False(t, customer.CustomerSince.IsZero())
}

func TestNotificationQueueCappedAtFifty(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 60; i++ {
		_, err := s.AddNotification(domain.Notification{
			Type:  domain.NotifLead,
			Title: fmt.Sprintf("n-%d", i),
		})
		require.NoError(t, err)
	}

	notifications := s.Notifications()
	require.Len(t, notifications, 50)
	// newest first
	assert.Equal(t, "n-59", notifications[0].Title)
	assert.Equal(t, "n-10", notifications[49].Title)
}

func TestNotificationObserverFires(t *testing.T) {
	var got []domain.Notification
	s := newTestStore(t, WithNotificationObserver(func(n domain.Notification) {
		got = append(got, n)
	}))

	_, err := s.AddLead(owner, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "New Lead Added", got[0].Title)
}

func TestMarkNotificationsRead(t *testing.T) {
	s := newTestStore(t)
	n, err := s.AddNotification(domain.Notification{Title: "one"})
	require.NoError(t, err)
	_, err = s.AddNotification(domain.Notification{Title: "two"})
	require.NoError(t, err)

	require.NoError(t, s.MarkNotificationRead(n.ID))
	assert.ErrorIs(t, s.MarkNotificationRead("missing"), ErrNotFound)

	require.NoError(t, s.MarkAllNotificationsRead())
	for _, cur := range s.Notifications() {
		assert.True(t, cur.IsRead)
	}
}

func TestUpdateDealStageWonAndLost(t *testing.T) {
	s := newTestStore(t)
	deal, err := s.AddDeal(domain.Deal{Title: "Cloud Migration", Value: 100000, Stage: domain.StageDiscovery, Probability: 25})
	require.NoError(t, err)

	won, err := s.UpdateDealStage(owner, deal.ID, domain.StageWon)
	require.NoError(t, err)
	assert.Equal(t, 100, won.Probability)
	require.NotNil(t, won.ActualClose)

	lost, err := s.UpdateDealStage(owner, deal.ID, domain.StageLost)
	require.NoError(t, err)
	assert.Equal(t, 0, lost.Probability)

	activities := s.ActivitiesFor(domain.EntityDeal, deal.ID)
	require.Len(t, activities, 2)
	assert.Equal(t, domain.StageWon, activities[0].OldValue)
	assert.Equal(t, domain.StageLost, activities[0].NewValue)
}

func TestDeleteActivityAuthorOrOwnerOnly(t *testing.T) {
	s := newTestStore(t)

	mine, err := s.AddActivity(sales, domain.Activity{
		EntityID:   "l1",
		EntityType: domain.EntityLead,
		Type:       domain.ActivityNote,
		Content:    "called, no answer",
	})
	require.NoError(t, err)

	other := domain.SessionUser{Email: "manager@business.com", Name: "Sonal Verma", Role: domain.RoleManager}
	assert.ErrorIs(t, s.DeleteActivity(other, mine.ID), ErrPermissionDenied)
	require.Len(t, s.ActivitiesFor(domain.EntityLead, "l1"), 1)

	require.NoError(t, s.DeleteActivity(sales, mine.ID))
	assert.Empty(t, s.ActivitiesFor(domain.EntityLead, "l1"))
}

func TestDeleteActivityOwnerOverrides(t *testing.T) {
	s := newTestStore(t)
	a, err := s.AddActivity(sales, domain.Activity{EntityID: "l1", EntityType: domain.EntityLead, Type: domain.ActivityNote})
	require.NoError(t, err)

	require.NoError(t, s.DeleteActivity(owner, a.ID))
}

func TestUserEmailUniqueness(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddUser(domain.User{Email: "a@b.com", Name: "A", Role: domain.RoleSales})
	require.NoError(t, err)

	_, err = s.AddUser(domain.User{Email: "A@B.COM", Name: "A2", Role: domain.RoleSales})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestDeleteUserOwnerImmutable(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddUser(domain.User{Email: "boss@b.com", Name: "Boss", Role: domain.RoleOwner})
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteUser("boss@b.com"), ErrOwnerImmutable)
	assert.ErrorIs(t, s.DeleteUser("nobody@b.com"), ErrNotFound)
}

func TestUpdateUserKeepsPasswordHash(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddUser(domain.User{Email: "a@b.com", PasswordHash: "hash", Name: "A", Role: domain.RoleSales})
	require.NoError(t, err)

	updated, err := s.UpdateUser("a@b.com", domain.User{Name: "A2", Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, "hash", updated.PasswordHash)
	assert.Equal(t, "A2", updated.Name)
}

func TestToggleTask(t *testing.T) {
	s := newTestStore(t)
	task, err := s.AddTask(domain.Task{Title: "Call back Arjun"})
	require.NoError(t, err)

	toggled, err := s.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	toggled, err = s.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)
}

func TestCompleteReminder(t *testing.T) {
	s := newTestStore(t)
	r, err := s.AddReminder(domain.Reminder{Title: "Send quote", DueDate: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	done, err := s.CompleteReminder(r.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)

	_, err = s.CompleteReminder("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLockUntilSurvivesReload(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend)

	until := time.Now().Add(15 * time.Minute)
	require.NoError(t, s.SetLockedUntil(until))

	reloaded := New(backend)
	assert.WithinDuration(t, until, reloaded.LockedUntil(), time.Second)

	require.NoError(t, reloaded.ClearLock())
	assert.True(t, reloaded.LockedUntil().IsZero())
}

func TestResetWipesEverything(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddLead(owner, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)
	_, err = s.AddUser(domain.User{Email: "a@b.com", Name: "A", Role: domain.RoleSales})
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	assert.Empty(t, s.Leads())
	assert.Empty(t, s.Users())
	assert.Empty(t, s.Notifications())
	assert.Empty(t, s.AuditLogs())
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Seed("hash"))
	require.Len(t, s.Users(), 3)
	require.Len(t, s.Leads(), 1)
	require.Len(t, s.Customers(), 2)
	require.Len(t, s.Deals(), 2)

	require.NoError(t, s.Seed("hash"))
	assert.Len(t, s.Users(), 3)
	assert.Len(t, s.Leads(), 1)
}

func TestStoreReloadsFromBackend(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend)
	lead, err := s.AddLead(owner, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)

	reloaded := New(backend)
	got, ok := reloaded.LeadByID(lead.ID)
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
}
