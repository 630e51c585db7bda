package analytics

import (
	"fmt"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// Criteria are the report filters. Every set field is an independent
// predicate; a record must satisfy all of them.
type Criteria struct {
	Start      *time.Time
	End        *time.Time
	Region     string // "" or "all" matches every region
	Location   string
	Staff      *StaffIdentity
	Ethnicity  string
	ServiceTag string
}

// Validate rejects criteria that cannot describe any window.
func (c Criteria) Validate() error {
	if c.Start != nil && c.End != nil && domain.StartOfDay(*c.Start).After(domain.StartOfDay(*c.End)) {
		return fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation,
			c.Start.Format("2006-01-02"), c.End.Format("2006-01-02"))
	}
	if c.Region != "" && c.Region != domain.RegionAll &&
		domain.Region(c.Region) != domain.RegionNorth && domain.Region(c.Region) != domain.RegionSouth {
		return fmt.Errorf("%w: unknown region %q", apperrors.ErrValidation, c.Region)
	}
	return nil
}

// inWindow reports whether t falls within the criteria's date range. The start
// bound is the beginning of its day, the end bound the last instant of its day.
func (c Criteria) inWindow(t time.Time) bool {
	if c.Start != nil && t.Before(domain.StartOfDay(*c.Start)) {
		return false
	}
	if c.End != nil && t.After(domain.EndOfDay(*c.End)) {
		return false
	}
	return true
}

func (c Criteria) hasWindow() bool {
	return c.Start != nil || c.End != nil
}

func (c Criteria) regionSet() bool {
	return c.Region != "" && c.Region != domain.RegionAll
}

func (c Criteria) matchesRegion(r domain.Region) bool {
	if !c.regionSet() {
		return true
	}
	return r != "" && string(r) == c.Region
}

// FilterActivities returns the activities matching every criterion, in input
// order. Region and ethnicity are resolved through the activity's client; an
// activity whose client is missing fails those predicates only.
func FilterActivities(activities []domain.Activity, clients domain.ClientIndex, c Criteria) ([]domain.Activity, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if !c.inWindow(a.Date) {
			continue
		}
		if c.Location != "" && a.Location != c.Location {
			continue
		}
		if c.Staff != nil && !MatchesAuthor(a, *c.Staff) {
			continue
		}
		if c.ServiceTag != "" && !a.HasTag(c.ServiceTag) {
			continue
		}
		if c.regionSet() || c.Ethnicity != "" {
			client, ok := clients[a.ClientID]
			if !ok {
				continue
			}
			if !c.matchesRegion(client.Region) {
				continue
			}
			if c.Ethnicity != "" && client.Ethnicity != c.Ethnicity {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

// FilterClients returns the clients matching the date (against the referral
// date), region and ethnicity criteria, in input order. Location, staff and
// service criteria do not apply to clients.
func FilterClients(clients []domain.Client, c Criteria) ([]domain.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(clients))
	for _, cl := range clients {
		if c.hasWindow() && (cl.ReferralDate == nil || !c.inWindow(*cl.ReferralDate)) {
			continue
		}
		if !c.matchesRegion(cl.Region) {
			continue
		}
		if c.Ethnicity != "" && cl.Ethnicity != c.Ethnicity {
			continue
		}
		out = append(out, cl)
	}
	return out, nil
}
