package analytics_test

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func intPtr(i int) *int {
	return &i
}

func navigator(email, name string) *domain.Actor {
	return &domain.Actor{ID: "u-" + email, Email: email, FullName: name, Role: domain.RoleNavigator}
}

func activityIDs(activities []domain.Activity) []string {
	ids := make([]string, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}
	return ids
}
