package pipeline

import (
	"log"
	"sort"
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const unknownClientName = "Unidentified client"

// Opportunity is a quote as shown on the funnel board.
type Opportunity struct {
	QuoteID     string               `json:"quote_id"`
	Number      string               `json:"number"`
	ClientName  string               `json:"client_name"`
	Total       decimal.Decimal      `json:"total"`
	CreatedAt   time.Time            `json:"created_at"`
	DueDate     time.Time            `json:"due_date"`
	Status      entities.QuoteStatus `json:"status"`
	Probability int                  `json:"probability"`
	DaysInStage int                  `json:"days_in_stage"`
	NextContact *time.Time           `json:"next_contact,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

type Stage struct {
	StageDefinition
	Opportunities []Opportunity `json:"opportunities"`
}

// BuildBoard buckets every quote into its stage, newest first. It is
// recomputed on each read; nothing here is persisted.
func BuildBoard(quotes []entities.Quote, clientNames map[string]string, now time.Time) []Stage {
	sorted := make([]entities.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	byStage := make(map[StageID][]Opportunity, len(DefaultStages))
	for _, q := range sorted {
		stage, ok := StageForStatus(q.Status)
		if !ok {
			log.Printf("[pipeline][board] quote left out of funnel quote_id=%s status=%s", q.ID, q.Status)
			continue
		}
		byStage[stage] = append(byStage[stage], toOpportunity(q, clientNames, now))
	}

	board := make([]Stage, 0, len(DefaultStages))
	for _, def := range DefaultStages {
		opps := byStage[def.ID]
		if opps == nil {
			opps = []Opportunity{}
		}
		board = append(board, Stage{StageDefinition: def, Opportunities: opps})
	}
	return board
}

func toOpportunity(q entities.Quote, clientNames map[string]string, now time.Time) Opportunity {
	name := clientNames[q.ClientID]
	if name == "" {
		name = unknownClientName
	}
	number := q.Number
	if number == "" {
		number = entities.ShortRef(q.ID)
	}
	return Opportunity{
		QuoteID:     q.ID,
		Number:      number,
		ClientName:  name,
		Total:       q.Total,
		CreatedAt:   q.CreatedAt,
		DueDate:     q.DueDate,
		Status:      q.Status,
		Probability: Probability(q.Status, q.DueDate, now),
		DaysInStage: DaysInStage(q.UpdatedAt, now),
		NextContact: q.NextContact,
		Notes:       q.Notes,
	}
}
