package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/f-engage-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de páginas seguidas em uma única consulta
const maxPages = 50

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetAccountInsights(ctx context.Context, accountID string, params url.Values) ([]metadomain.InsightRow, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Meta.Timeout},
	}
}

// GetAccountInsights consulta GET {versão}/{act_id}/insights e segue a paginação
func (c *MetaClient) GetAccountInsights(ctx context.Context, accountID string, params url.Values) ([]metadomain.InsightRow, error) {
	endpoint := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, AccountNode(accountID), params.Encode())

	rows := make([]metadomain.InsightRow, 0)
	for page := 0; endpoint != "" && page < maxPages; page++ {
		body, err := utils.MakeRequest(ctx, c.HTTPClient, endpoint, c.Cfg.Meta.AccessToken)
		if err != nil {
			return nil, c.handleError(accountID, body, err)
		}

		var response metadomain.InsightsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("insights: erro ao decodificar resposta da Marketing API")
			return nil, errors.Wrap(err, "decode insights response")
		}

		rows = append(rows, response.Data...)
		endpoint = response.Paging.Next
	}

	return rows, nil
}

func (c *MetaClient) handleError(accountID string, body []byte, err error) error {
	var statusErr *utils.StatusError
	if !errors.As(err, &statusErr) {
		logrus.WithError(err).WithField("account_id", accountID).Error("insights: erro ao fazer a requisição")
		return errors.Wrapf(err, "request insights for %s", accountID)
	}

	apiErr := &metadomain.APIError{StatusCode: statusErr.StatusCode}
	var errorResp metadomain.ErrorResponse
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil {
		apiErr.Details = errorResp.Error
	}

	entry := logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"status_code": statusErr.StatusCode,
		"fbtrace_id":  apiErr.Details.FBTraceID,
	})
	if apiErr.TokenExpired() {
		entry.Warn("insights: token da Marketing API expirado ou inválido")
	} else {
		entry.Error("insights: Marketing API respondeu com erro")
	}

	return apiErr
}

// AccountNode garante o prefixo act_ exigido pela Graph API
func AccountNode(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
