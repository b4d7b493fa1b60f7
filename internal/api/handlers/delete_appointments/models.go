package delete_appointments

import (
	"github.com/ubagofish/scheduler-service/internal/service/schedule/models"
)

// DeleteRequest HTTP request model. Scope is one of: all, buyer, client,
// day. Name selects the participant for buyer/client scope, Day the day
// label for day scope.
type DeleteRequest struct {
	Scope string `json:"scope"`
	Name  string `json:"name,omitempty"`
	Day   string `json:"day,omitempty"`
}

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Removed int `json:"removed"`
}

// ToServiceRequest converts the HTTP request to the service model.
func (r *DeleteRequest) ToServiceRequest() *models.DeleteRequest {
	return &models.DeleteRequest{
		Scope: models.DeleteScope(r.Scope),
		Name:  r.Name,
		Day:   r.Day,
	}
}
