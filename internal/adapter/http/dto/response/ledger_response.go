package response

// AlertsResponse wraps the dashboard alert strings.
type AlertsResponse struct {
	Alerts []string `json:"alerts"`
}

func FromAlerts(alerts []string) AlertsResponse {
	if alerts == nil {
		alerts = []string{}
	}
	return AlertsResponse{Alerts: alerts}
}
