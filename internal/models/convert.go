package models

import (
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// The conversions below are shared by the Postgres and sqlite stores.

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func FromDomainClient(d domain.Client) Client {
	return Client{
		ClientID:       d.ID,
		FullName:       d.FullName,
		Sex:            d.Sex,
		DateOfBirth:    d.DateOfBirth,
		Age:            d.Age,
		Ethnicity:      d.Ethnicity,
		CountryOfBirth: d.CountryOfBirth,
		Languages:      nonNil(d.Languages),
		ReferralSource: d.ReferralSource,
		ReferralDate:   d.ReferralDate,
		Address:        d.Address,
		Postcode:       d.Postcode,
		Region:         string(d.Region),
		PasswordHash:   d.PasswordHash,
		CreatedAt:      d.CreatedAt,
	}
}

func (m Client) ToDomain() domain.Client {
	return domain.Client{
		ID:             m.ClientID,
		FullName:       m.FullName,
		Sex:            m.Sex,
		DateOfBirth:    m.DateOfBirth,
		Age:            m.Age,
		Ethnicity:      m.Ethnicity,
		CountryOfBirth: m.CountryOfBirth,
		Languages:      nonNil(m.Languages),
		ReferralSource: m.ReferralSource,
		ReferralDate:   m.ReferralDate,
		Address:        m.Address,
		Postcode:       m.Postcode,
		Region:         domain.Region(m.Region),
		PasswordHash:   m.PasswordHash,
		CreatedAt:      m.CreatedAt,
	}
}

func FromDomainActivity(d domain.Activity) Activity {
	return Activity{
		ActivityID:           d.ID,
		ClientID:             d.ClientID,
		ActivityDate:         d.Date,
		Location:             d.Location,
		NavigationAssistance: nonNil(d.NavigationAssistance),
		ServicesAccessed:     nonNil(d.ServicesAccessed),
		EducationalResources: nonNil(d.EducationalResources),
		PreventiveServices:   nonNil(d.PreventiveServices),
		MaternalChildHealth:  nonNil(d.MaternalChildHealth),
		OtherAssistance:      d.OtherAssistance,
		OtherEducation:       d.OtherEducation,
		ReferralsMade:        d.ReferralsMade,
		FollowUpActions:      d.FollowUpActions,
		IsDischarge:          d.IsDischarge,
		DischargeDate:        d.DischargeDate,
		DischargeReason:      d.DischargeReason,
		CreatedBy:            d.CreatedBy,
		CreatedByName:        d.CreatedByName,
		CreatedByRole:        string(d.CreatedByRole),
		CreatedAt:            d.Authorship.CreatedAt,
	}
}

func (m Activity) ToDomain() domain.Activity {
	return domain.Activity{
		ID:                   m.ActivityID,
		ClientID:             m.ClientID,
		Date:                 m.ActivityDate,
		Location:             m.Location,
		NavigationAssistance: nonNil(m.NavigationAssistance),
		ServicesAccessed:     nonNil(m.ServicesAccessed),
		EducationalResources: nonNil(m.EducationalResources),
		PreventiveServices:   nonNil(m.PreventiveServices),
		MaternalChildHealth:  nonNil(m.MaternalChildHealth),
		OtherAssistance:      m.OtherAssistance,
		OtherEducation:       m.OtherEducation,
		ReferralsMade:        m.ReferralsMade,
		FollowUpActions:      m.FollowUpActions,
		IsDischarge:          m.IsDischarge,
		DischargeDate:        m.DischargeDate,
		DischargeReason:      m.DischargeReason,
		Authorship: domain.Authorship{
			CreatedBy:     m.CreatedBy,
			CreatedByName: m.CreatedByName,
			CreatedByRole: domain.Role(m.CreatedByRole),
			CreatedAt:     m.CreatedAt,
		},
	}
}

func FromDomainWorkforceEntry(d domain.WorkforceEntry) WorkforceEntry {
	return WorkforceEntry{
		EntryID:   d.ID,
		Partition: string(d.Partition),
		FTE:       d.FTE,
		Role:      d.Role,
		Ethnicity: d.Ethnicity,
		Languages: nonNil(d.Languages),
	}
}

func (m WorkforceEntry) ToDomain() domain.WorkforceEntry {
	return domain.WorkforceEntry{
		ID:        m.EntryID,
		Partition: domain.WorkforcePartition(m.Partition),
		FTE:       m.FTE,
		Role:      m.Role,
		Ethnicity: m.Ethnicity,
		Languages: nonNil(m.Languages),
	}
}

func FromDomainStaff(d domain.StaffAccount) StaffAccount {
	return StaffAccount{
		StaffID:           d.ID,
		Email:             domain.NormalizeEmail(d.Email),
		FullName:          d.FullName,
		Role:              string(d.Role),
		AssignedLocations: nonNil(d.AssignedLocations),
		IsActive:          d.IsActive,
		PhoneNumber:       d.PhoneNumber,
		PasswordHash:      d.PasswordHash,
		LastLogin:         d.LastLogin,
		AuditFields: AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func (m StaffAccount) ToDomain() domain.StaffAccount {
	return domain.StaffAccount{
		ID:                m.StaffID,
		Email:             m.Email,
		FullName:          m.FullName,
		Role:              domain.Role(m.Role),
		AssignedLocations: nonNil(m.AssignedLocations),
		IsActive:          m.IsActive,
		PhoneNumber:       m.PhoneNumber,
		PasswordHash:      m.PasswordHash,
		LastLogin:         m.LastLogin,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func FromDomainGpPractice(d domain.GpPractice) GpPractice {
	return GpPractice{
		PracticeID: d.ID,
		Name:       d.Name,
		Address:    d.Address,
		Phone:      d.Phone,
		Website:    d.Website,
		Notes:      d.Notes,
		AuditFields: AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func (m GpPractice) ToDomain() domain.GpPractice {
	return domain.GpPractice{
		ID:      m.PracticeID,
		Name:    m.Name,
		Address: m.Address,
		Phone:   m.Phone,
		Website: m.Website,
		Notes:   m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func FromDomainProgramResource(d domain.ProgramResource) ProgramResource {
	return ProgramResource{
		ResourceID:   d.ID,
		Name:         d.Name,
		ResourceType: d.Type,
		Category:     d.Category,
		DateAdded:    d.DateAdded,
		FileURL:      d.FileURL,
		FileName:     d.FileName,
		FileSize:     d.FileSize,
		FileType:     d.FileType,
		StoragePath:  d.StoragePath,
	}
}

func (m ProgramResource) ToDomain() domain.ProgramResource {
	return domain.ProgramResource{
		ID:          m.ResourceID,
		Name:        m.Name,
		Type:        m.ResourceType,
		Category:    m.Category,
		DateAdded:   m.DateAdded,
		FileURL:     m.FileURL,
		FileName:    m.FileName,
		FileSize:    m.FileSize,
		FileType:    m.FileType,
		StoragePath: m.StoragePath,
	}
}

func FromDomainExperienceEntry(d domain.ExperienceEntry) ExperienceEntry {
	attachments := make([]Attachment, len(d.Attachments))
	for i, a := range d.Attachments {
		attachments[i] = Attachment(a)
	}
	return ExperienceEntry{
		ExperienceID:   d.ID,
		ClientID:       d.ClientID,
		ExperienceDate: d.Date,
		Content:        d.Content,
		IsRead:         d.IsRead,
		Attachments:    attachments,
	}
}

func (m ExperienceEntry) ToDomain() domain.ExperienceEntry {
	attachments := make([]domain.Attachment, len(m.Attachments))
	for i, a := range m.Attachments {
		attachments[i] = domain.Attachment(a)
	}
	return domain.ExperienceEntry{
		ID:          m.ExperienceID,
		ClientID:    m.ClientID,
		Date:        m.ExperienceDate,
		Content:     m.Content,
		IsRead:      m.IsRead,
		Attachments: attachments,
	}
}

func FromDomainPortalMessage(d domain.PortalMessage) PortalMessage {
	return PortalMessage{
		MessageID: d.ID,
		ClientID:  d.ClientID,
		SentAt:    d.Timestamp,
		Sender:    string(d.Sender),
		Body:      d.Text,
		Language:  d.Language,
		IsRead:    d.IsRead,
	}
}

func (m PortalMessage) ToDomain() domain.PortalMessage {
	return domain.PortalMessage{
		ID:        m.MessageID,
		ClientID:  m.ClientID,
		Timestamp: m.SentAt,
		Sender:    domain.MessageSender(m.Sender),
		Text:      m.Body,
		Language:  m.Language,
		IsRead:    m.IsRead,
	}
}

func (m PortalActivity) ToDomain() domain.PortalActivity {
	return domain.PortalActivity(m)
}
