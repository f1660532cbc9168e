package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Tipo de ação que a Marketing API usa para conversas iniciadas por anúncios CTWA
const MessagingConversationStarted = "onsite_conversion.messaging_conversation_started_7d"

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// InsightRow é uma linha do endpoint /insights. Os números chegam como string.
type InsightRow struct {
	AccountID         string   `json:"account_id"`
	CampaignID        string   `json:"campaign_id,omitempty"`
	AdsetID           string   `json:"adset_id,omitempty"`
	AdID              string   `json:"ad_id,omitempty"`
	Actions           []Action `json:"actions,omitempty"`
	Clicks            string   `json:"clicks"`
	CPC               string   `json:"cpc"`
	CTR               string   `json:"ctr"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
	Impressions       string   `json:"impressions"`
	Reach             string   `json:"reach"`
	Spend             string   `json:"spend"`
	Age               string   `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	PublisherPlatform string   `json:"publisher_platform,omitempty"`
	PlatformPosition  string   `json:"platform_position,omitempty"`
}

type InsightsResponse struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

func (r *InsightRow) ImpressionsInt() int {
	return parseInt("impressions", r.Impressions)
}

func (r *InsightRow) ReachInt() int {
	return parseInt("reach", r.Reach)
}

func (r *InsightRow) ClicksInt() int {
	return parseInt("clicks", r.Clicks)
}

func (r *InsightRow) SpendFloat() float64 {
	return parseFloat("spend", r.Spend)
}

func (r *InsightRow) CPCFloat() float64 {
	return parseFloat("cpc", r.CPC)
}

// Conversations soma as conversas de mensagens iniciadas registradas nas ações
func (r *InsightRow) Conversations() int {
	total := 0
	for _, action := range r.Actions {
		if action.ActionType == MessagingConversationStarted {
			total += parseInt(action.ActionType, action.Value)
		}
	}
	return total
}

// Placement prefere a posição (feed, story, reels) e cai para a plataforma
func (r *InsightRow) Placement() string {
	if r.PlatformPosition != "" {
		return r.PlatformPosition
	}
	return r.PublisherPlatform
}

func parseInt(field, value string) int {
	if value == "" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to integer")
		return 0
	}
	return n
}

func parseFloat(field, value string) float64 {
	if value == "" {
		return 0
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to float")
		return 0
	}
	return n
}

// ObjectiveFilter mapeia o objetivo do painel para os objetivos de campanha da Marketing API
var ObjectiveFilter = map[string][]string{
	"conversions":  {"CONVERSIONS", "OUTCOME_SALES"},
	"messages":     {"MESSAGES", "OUTCOME_ENGAGEMENT"},
	"traffic":      {"LINK_CLICKS", "OUTCOME_TRAFFIC"},
	"awareness":    {"BRAND_AWARENESS", "REACH", "OUTCOME_AWARENESS"},
	"app_installs": {"APP_INSTALLS", "OUTCOME_APP_PROMOTION"},
}
