package request

import "winnet_crm/internal/usecase"

type ClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	LeadOrigin string `json:"lead_origin"`
	Status     string `json:"status"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Company:    r.Company,
		LeadOrigin: r.LeadOrigin,
		Status:     r.Status,
	}
}
