package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// ClientsCSVFileName is the download name used for client exports.
const ClientsCSVFileName = "clients.csv"

const languageSeparator = "; "

var clientCSVHeader = []string{
	"ID", "Full Name", "Sex", "Date of Birth", "Age", "Ethnicity",
	"Country of Birth", "Languages", "Referral Source", "Referral Date",
}

// WriteClientsCSV writes clients as CSV. Every text column is quoted with
// embedded quotes doubled; the age column is bare and empty when unknown.
// Ages are derived at now.
func WriteClientsCSV(w io.Writer, clients []domain.Client, now time.Time) error {
	var b strings.Builder
	b.WriteString(strings.Join(clientCSVHeader, ","))
	for _, c := range clients {
		age := ""
		if a := c.AgeAt(now); a != nil {
			age = strconv.Itoa(*a)
		}
		fields := []string{
			quote(c.ID),
			quote(c.FullName),
			quote(c.Sex),
			quote(dto.FormatOptionalDate(c.DateOfBirth)),
			age,
			quote(c.Ethnicity),
			quote(c.CountryOfBirth),
			quote(strings.Join(c.Languages, languageSeparator)),
			quote(c.ReferralSource),
			quote(dto.FormatOptionalDate(c.ReferralDate)),
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(fields, ","))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write clients csv: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ParseClientsCSV reads a file produced by WriteClientsCSV. Only the exported
// columns are restored; the age column is kept as the stored age.
func ParseClientsCSV(r io.Reader) ([]domain.Client, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(clientCSVHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty clients csv", apperrors.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	for i, h := range clientCSVHeader {
		if header[i] != h {
			return nil, fmt.Errorf("%w: unexpected column %q at position %d", apperrors.ErrValidation, header[i], i+1)
		}
	}

	clients := []domain.Client{}
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		c, err := parseClientRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func parseClientRecord(rec []string) (domain.Client, error) {
	c := domain.Client{
		ID:             rec[0],
		FullName:       rec[1],
		Sex:            rec[2],
		Ethnicity:      rec[5],
		CountryOfBirth: rec[6],
		Languages:      []string{},
		ReferralSource: rec[8],
	}
	dob, err := dto.ParseOptionalDate("Date of Birth", rec[3])
	if err != nil {
		return c, err
	}
	c.DateOfBirth = dob
	if rec[4] != "" {
		age, err := strconv.Atoi(rec[4])
		if err != nil {
			return c, fmt.Errorf("%w: invalid age %q", apperrors.ErrValidation, rec[4])
		}
		c.Age = &age
	}
	if rec[7] != "" {
		c.Languages = strings.Split(rec[7], languageSeparator)
	}
	referral, err := dto.ParseOptionalDate("Referral Date", rec[9])
	if err != nil {
		return c, err
	}
	c.ReferralDate = referral
	return c, nil
}
