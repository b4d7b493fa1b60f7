package update_participants

// UpdateParticipantsRequest HTTP request model. Lists replace the stored
// ones wholesale, mirroring the one-name-per-line text areas they come
// from.
type UpdateParticipantsRequest struct {
	Buyers  []string `json:"buyers"`
	Clients []string `json:"clients"`
}

// ParticipantsResponse HTTP response model
type ParticipantsResponse struct {
	Buyers  []string `json:"buyers"`
	Clients []string `json:"clients"`
}
