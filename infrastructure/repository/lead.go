package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/infrastructure/database/postgres"
	"github.com/vfg2006/f-engage-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const leadsTable = "leads"

var leadColumns = []string{
	"id",
	"wa_phone",
	"first_message",
	"referral",
	"ctwa_clid",
	"campaign_id",
	"adset_id",
	"ad_id",
	"score",
	"status",
	"owner",
	"created_time",
	"conversion_value",
}

// LeadRepository implementa o provedor de leads sobre a tabela leads
type LeadRepository struct {
	conn postgres.Queryer
}

func NewLeadRepository(conn postgres.Queryer) *LeadRepository {
	return &LeadRepository{
		conn: conn,
	}
}

func (r *LeadRepository) FetchLeads(ctx context.Context, status *domain.LeadStatus) ([]*domain.Lead, error) {
	leadsSQL, leadsArgs, err := buildListLeadsQuery(status)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, leadsSQL, leadsArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "query leads")
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := deserializeLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate leads")
	}

	return leads, nil
}

func (r *LeadRepository) FetchLead(ctx context.Context, id string) (*domain.Lead, error) {
	leadSQL, leadArgs, err := buildGetLeadQuery(id)
	if err != nil {
		return nil, err
	}

	lead, err := deserializeLead(r.conn.QueryRowContext(ctx, leadSQL, leadArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return lead, nil
}

// AssignLead não falha quando o lead não existe: nenhuma linha é alterada
func (r *LeadRepository) AssignLead(ctx context.Context, id string, owner string) error {
	assignSQL, assignArgs, err := buildAssignLeadQuery(id, owner)
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, assignSQL, assignArgs...)
	if err != nil {
		return errors.Wrapf(err, "assign lead %s", id)
	}

	logAffected(result, id, "assign")
	return nil
}

func (r *LeadRepository) SetLeadStatus(ctx context.Context, id string, status domain.LeadStatus, conversionValue *float64) error {
	statusSQL, statusArgs, err := buildSetLeadStatusQuery(id, status, conversionValue)
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, statusSQL, statusArgs...)
	if err != nil {
		return errors.Wrapf(err, "set status of lead %s", id)
	}

	logAffected(result, id, "set_status")
	return nil
}

// SaveLeads insere os leads ignorando IDs já existentes
func (r *LeadRepository) SaveLeads(ctx context.Context, leads []*domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	insertSQL, insertArgs, err := buildInsertLeadsQuery(leads)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return errors.Wrap(err, "insert leads")
	}

	return nil
}

func buildListLeadsQuery(status *domain.LeadStatus) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(leadColumns...).
		From(leadsTable).
		OrderBy("created_time DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": string(*status)})
	}

	return queryBuilder.ToSql()
}

func buildGetLeadQuery(id string) (string, []interface{}, error) {
	return squirrel.
		Select(leadColumns...).
		From(leadsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildAssignLeadQuery(id, owner string) (string, []interface{}, error) {
	return squirrel.
		Update(leadsTable).
		Set("owner", owner).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildSetLeadStatusQuery só toca conversion_value quando o lead é ganho com valor positivo
func buildSetLeadStatusQuery(id string, status domain.LeadStatus, conversionValue *float64) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Update(leadsTable).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if status == domain.LeadStatusWon && conversionValue != nil && *conversionValue > 0 {
		queryBuilder = queryBuilder.Set("conversion_value", *conversionValue)
	}

	return queryBuilder.ToSql()
}

func buildInsertLeadsQuery(leads []*domain.Lead) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Insert(leadsTable).
		Columns(leadColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, lead := range leads {
		referral, err := serializeReferral(lead.Referral)
		if err != nil {
			return "", nil, err
		}

		queryBuilder = queryBuilder.Values(
			lead.ID,
			lead.Phone,
			lead.FirstMessage,
			referral,
			lead.CTWAClid,
			lead.CampaignID,
			lead.AdsetID,
			lead.AdID,
			lead.Score,
			string(lead.Status),
			lead.Owner,
			lead.CreatedTime,
			lead.ConversionValue,
		)
	}

	return queryBuilder.ToSql()
}

type scanner interface {
	Scan(dest ...any) error
}

func deserializeLead(row scanner) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var (
		referral        []byte
		ctwaClid        sql.NullString
		campaignID      sql.NullString
		adsetID         sql.NullString
		adID            sql.NullString
		status          string
		owner           sql.NullString
		conversionValue sql.NullFloat64
	)

	if err := row.Scan(
		&lead.ID,
		&lead.Phone,
		&lead.FirstMessage,
		&referral,
		&ctwaClid,
		&campaignID,
		&adsetID,
		&adID,
		&lead.Score,
		&status,
		&owner,
		&lead.CreatedTime,
		&conversionValue,
	); err != nil {
		return nil, err
	}

	if len(referral) > 0 {
		lead.Referral = &domain.Referral{}
		if err := json.Unmarshal(referral, lead.Referral); err != nil {
			return nil, errors.Wrapf(err, "decode referral of lead %s", lead.ID)
		}
	}

	lead.Status = domain.LeadStatus(status)
	lead.CTWAClid = nullString(ctwaClid)
	lead.CampaignID = nullString(campaignID)
	lead.AdsetID = nullString(adsetID)
	lead.AdID = nullString(adID)
	lead.Owner = nullString(owner)
	if conversionValue.Valid {
		v := conversionValue.Float64
		lead.ConversionValue = &v
	}

	return lead, nil
}

func serializeReferral(referral *domain.Referral) (interface{}, error) {
	if referral == nil {
		return nil, nil
	}

	data, err := json.Marshal(referral)
	if err != nil {
		return nil, errors.Wrap(err, "encode referral")
	}

	return string(data), nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func logAffected(result sql.Result, id, operation string) {
	affected, err := result.RowsAffected()
	if err != nil || affected > 0 {
		return
	}

	logrus.WithFields(logrus.Fields{
		"lead_id":   id,
		"operation": operation,
	}).Debug("leads: nenhum lead alterado")
}
