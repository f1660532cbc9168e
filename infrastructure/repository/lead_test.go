package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/f-engage-api/internal/domain"
)

const selectColumns = "SELECT id, wa_phone, first_message, referral, ctwa_clid, campaign_id, adset_id, ad_id, score, status, owner, created_time, conversion_value FROM leads"

func TestBuildListLeadsQuery(t *testing.T) {
	won := domain.LeadStatusWon

	tests := []struct {
		name         string
		status       *domain.LeadStatus
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:        "Sem filtro de status",
			status:      nil,
			expectedSQL: selectColumns + " ORDER BY created_time DESC, id ASC",
		},
		{
			name:         "Filtrando por won",
			status:       &won,
			expectedSQL:  selectColumns + " WHERE status = $1 ORDER BY created_time DESC, id ASC",
			expectedArgs: []interface{}{"won"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListLeadsQuery(tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, query)
			assert.Equal(t, len(tt.expectedArgs), len(args))
			for i := range tt.expectedArgs {
				assert.Equal(t, tt.expectedArgs[i], args[i])
			}
		})
	}
}

func TestBuildGetLeadQuery(t *testing.T) {
	query, args, err := buildGetLeadQuery("lead_901")
	require.NoError(t, err)
	assert.Equal(t, selectColumns+" WHERE id = $1", query)
	assert.Equal(t, []interface{}{"lead_901"}, args)
}

func TestBuildAssignLeadQuery(t *testing.T) {
	query, args, err := buildAssignLeadQuery("lead_901", "Ana Silva")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE leads SET owner = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"Ana Silva", "lead_901"}, args)
}

func TestBuildSetLeadStatusQuery(t *testing.T) {
	value := 1500.0
	zero := 0.0

	tests := []struct {
		name         string
		status       domain.LeadStatus
		value        *float64
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "Won com valor - grava conversion_value",
			status:       domain.LeadStatusWon,
			value:        &value,
			expectedSQL:  "UPDATE leads SET status = $1, conversion_value = $2 WHERE id = $3",
			expectedArgs: []interface{}{"won", 1500.0, "lead_901"},
		},
		{
			name:         "Won sem valor - mantém conversion_value",
			status:       domain.LeadStatusWon,
			value:        nil,
			expectedSQL:  "UPDATE leads SET status = $1 WHERE id = $2",
			expectedArgs: []interface{}{"won", "lead_901"},
		},
		{
			name:         "Won com valor zero - mantém conversion_value",
			status:       domain.LeadStatusWon,
			value:        &zero,
			expectedSQL:  "UPDATE leads SET status = $1 WHERE id = $2",
			expectedArgs: []interface{}{"won", "lead_901"},
		},
		{
			name:         "Open com valor - valor ignorado",
			status:       domain.LeadStatusOpen,
			value:        &value,
			expectedSQL:  "UPDATE leads SET status = $1 WHERE id = $2",
			expectedArgs: []interface{}{"open", "lead_901"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSetLeadStatusQuery("lead_901", tt.status, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, query)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestBuildInsertLeadsQuery(t *testing.T) {
	leads := whatsapp.FixtureLeads()

	query, args, err := buildInsertLeadsQuery(leads)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO leads "))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (id) DO NOTHING"))
	assert.Len(t, args, len(leads)*len(leadColumns))
	assert.Contains(t, query, "$104")

	// referral é serializado como JSON; leads sem referral gravam NULL
	referral, ok := args[3].(string)
	require.True(t, ok)
	assert.Contains(t, referral, `"source_id":"3201"`)
	assert.Nil(t, args[3*len(leadColumns)+3])
}

type fakeRow struct {
	values []interface{}
}

func (f fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = f.values[i].(string)
		case *int:
			*target = f.values[i].(int)
		case *[]byte:
			if f.values[i] != nil {
				*target = []byte(f.values[i].(string))
			}
		default:
			if scanner, ok := d.(interface{ Scan(any) error }); ok {
				if err := scanner.Scan(f.values[i]); err != nil {
					return err
				}
				continue
			}
			if ts, ok := d.(*interface{}); ok {
				*ts = f.values[i]
			}
		}
	}
	return nil
}

func TestDeserializeLead(t *testing.T) {
	row := fakeRow{values: []interface{}{
		"lead_903",
		"+55 11 97777-2222",
		"Oi, vi o anúncio e tenho interesse",
		`{"source_type":"ads","source_id":"3203","headline":"Brasil Card - Evento Especial","body":"Exclusivo"}`,
		nil,
		"1201",
		"2202",
		"3203",
		92,
		"won",
		"Carlos Santos",
		nil,
		1500.0,
	}}

	lead, err := deserializeLead(row)
	require.NoError(t, err)

	assert.Equal(t, "lead_903", lead.ID)
	assert.Equal(t, domain.LeadStatusWon, lead.Status)
	require.NotNil(t, lead.Referral)
	assert.Equal(t, "3203", lead.Referral.SourceID)
	assert.Nil(t, lead.CTWAClid)
	require.NotNil(t, lead.AdsetID)
	assert.Equal(t, "2202", *lead.AdsetID)
	require.NotNil(t, lead.Owner)
	assert.Equal(t, "Carlos Santos", *lead.Owner)
	require.NotNil(t, lead.ConversionValue)
	assert.Equal(t, 1500.0, *lead.ConversionValue)
}
