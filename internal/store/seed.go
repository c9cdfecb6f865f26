package store

import (
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// Seed populates a fresh workspace with the demo team and a small set
// of sample records. It is a no-op when users already exist. All three
// demo accounts share the given password hash.
func (s *Store) Seed(passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return nil
	}

	s.users = []domain.User{
		{
			Email:        "owner@business.com",
			PasswordHash: passwordHash,
			Name:         "Rajesh Iyer",
			Role:         domain.RoleOwner,
			Avatar:       "https://i.pravatar.cc/150?u=rajesh",
		},
		{
			Email:        "manager@business.com",
			PasswordHash: passwordHash,
			Name:         "Sonal Verma",
			Role:         domain.RoleManager,
			Avatar:       "https://i.pravatar.cc/150?u=sonal",
		},
		{
			Email:        "sales@business.com",
			PasswordHash: passwordHash,
			Name:         "Amit Sharma",
			Role:         domain.RoleSales,
			Avatar:       "https://i.pravatar.cc/150?u=amit",
		},
	}
	s.profile = domain.UserProfile{Name: "Rajesh Iyer", Phone: "+91 98765 43210"}
	s.business = domain.BusinessInfo{
		Name:    "My Business Pvt Ltd",
		Type:    "Services",
		Address: "123, Tech Park, Hitech City, Hyderabad, 500081",
	}

	now := time.Now()
	lead := domain.Lead{
		ID:           domain.NewID(),
		Name:         "Arjun Mehta",
		Email:        "arjun@techindia.com",
		Phone:        "+91 98765 43210",
		Company:      "Tech India Solutions",
		Status:       domain.LeadStatusNew,
		Source:       "Website",
		Priority:     domain.PriorityHigh,
		Value:        50000,
		City:         "Mumbai",
		Notes:        "Interested in enterprise license.",
		LastContact:  now,
		CreatedAt:    now,
		AssignedTo:   "Rajesh Iyer",
		AssignedToID: "owner@business.com",
		AIMetadata:   &domain.LeadAIMetadata{Score: 85, ScoreLabel: "Hot"},
	}
	s.leads = []domain.Lead{lead}

	cust1 := domain.Customer{
		ID:                   "cust-" + domain.NewID(),
		Name:                 "Sunil Kumar",
		Email:                "sunil@globalcorp.com",
		Phone:                "+91 91234 56789",
		Company:              "Global Corp",
		City:                 "Delhi",
		CustomerSince:        now.AddDate(-1, 0, 0),
		LoyaltyStatus:        domain.LoyaltyVIP,
		TotalRevenue:         450000,
		ActiveDealsCount:     1,
		PreferredLanguage:    "English",
		PreferredContactTime: "10 AM - 12 PM",
		Tags:                 []string{"VIP", "Cloud Focused"},
		PaymentStatus:        domain.PaymentPaid,
		AssignedToID:         "owner@business.com",
	}
	cust2 := domain.Customer{
		ID:                   "cust-" + domain.NewID(),
		Name:                 "Priyanka Rao",
		Email:                "priyanka@techsavylabs.io",
		Phone:                "+91 88776 55443",
		Company:              "Tech-Savy Labs",
		City:                 "Bangalore",
		CustomerSince:        now.AddDate(0, -6, 0),
		LoyaltyStatus:        domain.LoyaltyActive,
		TotalRevenue:         280000,
		ActiveDealsCount:     2,
		PreferredLanguage:    "English",
		PreferredContactTime: "2 PM - 4 PM",
		Tags:                 []string{"High Growth", "SaaS"},
		PaymentStatus:        domain.PaymentPaid,
		AssignedToID:         "owner@business.com",
	}
	s.customers = []domain.Customer{cust1, cust2}

	closed := now.AddDate(0, -2, 0)
	s.deals = []domain.Deal{
		{
			ID:            domain.NewID(),
			Title:         "Enterprise Cloud Migration",
			CustomerID:    cust1.ID,
			CustomerName:  cust1.Name,
			Value:         300000,
			Stage:         domain.StageWon,
			Priority:      domain.PriorityHigh,
			Probability:   100,
			ExpectedClose: now.AddDate(0, 1, 0).Format("2006-01-02"),
			ActualClose:   &closed,
			AssignedTo:    "Sonal Verma",
			AssignedToID:  "manager@business.com",
			Products:      []domain.DealProduct{{Name: "Cloud Server Setup", Quantity: 1, Price: 300000}},
			CreatedAt:     now.AddDate(0, -3, 0),
			UpdatedAt:     closed,
		},
		{
			ID:            domain.NewID(),
			Title:         "Mobile App Redevelopment",
			CustomerID:    cust2.ID,
			CustomerName:  cust2.Name,
			Value:         550000,
			Stage:         domain.StageDiscovery,
			Priority:      domain.PriorityHigh,
			Probability:   25,
			ExpectedClose: now.AddDate(0, 5, 0).Format("2006-01-02"),
			AssignedTo:    "Rajesh Iyer",
			AssignedToID:  "owner@business.com",
			Products:      []domain.DealProduct{{Name: "App Development", Quantity: 1, Price: 550000}},
			CreatedAt:     now.AddDate(0, -1, 0),
			UpdatedAt:     now,
		},
	}

	s.activities = []domain.Activity{
		{
			ID:         domain.NewID(),
			EntityID:   lead.ID,
			EntityType: domain.EntityLead,
			Type:       domain.ActivityCreated,
			Content:    "Lead created via Website",
			Timestamp:  now,
			User:       "System",
			UserID:     "system",
		},
	}

	for key, v := range map[string]any{
		storage.KeyUsers:      s.users,
		storage.KeyProfile:    s.profile,
		storage.KeyBusiness:   s.business,
		storage.KeyLeads:      s.leads,
		storage.KeyCustomers:  s.customers,
		storage.KeyDeals:      s.deals,
		storage.KeyActivities: s.activities,
	} {
		if err := s.persist(key, v); err != nil {
			return err
		}
	}
	return nil
}
