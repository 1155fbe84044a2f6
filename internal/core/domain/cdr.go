package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CallDirection is the leg direction of a call.
type CallDirection string

const (
	CallDirectionInbound  CallDirection = "inbound"
	CallDirectionOutbound CallDirection = "outbound"
)

// CDR is a call detail record with its computed cost.
type CDR struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	CallID          string          `json:"call_id"`
	Caller          string          `json:"caller"`
	Callee          string          `json:"callee"`
	Direction       CallDirection   `json:"direction"`
	Disposition     string          `json:"disposition"`
	StartTime       time.Time       `json:"start_time"`
	AnswerTime      *time.Time      `json:"answer_time,omitempty"`
	EndTime         time.Time       `json:"end_time"`
	Duration        int             `json:"duration"` // seconds, start to end
	BillableSeconds int             `json:"billable_seconds"`
	RatePerMinute   decimal.Decimal `json:"rate_per_minute"`
	Cost            decimal.Decimal `json:"cost"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TalkSeconds returns seconds from answer to end, or zero for unanswered calls.
func (c *CDR) TalkSeconds() int {
	if c.AnswerTime == nil || c.EndTime.Before(*c.AnswerTime) {
		return 0
	}
	return int(c.EndTime.Sub(*c.AnswerTime) / time.Second)
}

// ApplyRating fills BillableSeconds and Cost from the answered duration.
// When roundToMinute is set, billable time is rounded up to whole minutes.
func (c *CDR) ApplyRating(roundToMinute bool) {
	secs := c.TalkSeconds()
	if roundToMinute && secs%60 != 0 {
		secs += 60 - secs%60
	}
	c.BillableSeconds = secs
	c.Cost = c.RatePerMinute.Mul(decimal.NewFromInt(int64(secs))).Div(decimal.NewFromInt(60)).Round(4)
}
