package pipeline

import "winnet_crm/internal/domain/entities"

// StageID identifies a bucket of the commercial funnel.
type StageID string

const (
	StageLead          StageID = "lead"
	StageQualification StageID = "qualification"
	StageProposal      StageID = "proposal"
	StageNegotiation   StageID = "negotiation"
	StageClosed        StageID = "closed"
	StageLost          StageID = "lost"
)

type StageDefinition struct {
	ID    StageID `json:"id"`
	Name  string  `json:"name"`
	Order int     `json:"order"`
	Color string  `json:"color"`
}

// DefaultStages is the six-stage funnel, in display order.
//
// The quote status enum only feeds lead, proposal, closed and lost;
// qualification and negotiation stay empty until quotes carry a funnel stage
// of their own.
var DefaultStages = []StageDefinition{
	{ID: StageLead, Name: "Lead", Order: 1, Color: "#94a3b8"},
	{ID: StageQualification, Name: "Qualification", Order: 2, Color: "#60a5fa"},
	{ID: StageProposal, Name: "Proposal", Order: 3, Color: "#34d399"},
	{ID: StageNegotiation, Name: "Negotiation", Order: 4, Color: "#fbbf24"},
	{ID: StageClosed, Name: "Closed", Order: 5, Color: "#10b981"},
	{ID: StageLost, Name: "Lost", Order: 6, Color: "#ef4444"},
}

// StageForStatus maps a quote status to its funnel stage. Unknown statuses
// are not bucketed.
func StageForStatus(status entities.QuoteStatus) (StageID, bool) {
	switch status {
	case entities.QuoteStatusDraft:
		return StageLead, true
	case entities.QuoteStatusSent:
		return StageProposal, true
	case entities.QuoteStatusApproved:
		return StageClosed, true
	case entities.QuoteStatusRejected:
		return StageLost, true
	}
	return "", false
}

// StatusForStage is the reverse mapping used when a card is moved on the board.
func StatusForStage(stage StageID) (entities.QuoteStatus, bool) {
	switch stage {
	case StageLead, StageQualification:
		return entities.QuoteStatusDraft, true
	case StageProposal, StageNegotiation:
		return entities.QuoteStatusSent, true
	case StageClosed:
		return entities.QuoteStatusApproved, true
	case StageLost:
		return entities.QuoteStatusRejected, true
	}
	return "", false
}
