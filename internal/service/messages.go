package service

import "github.com/mmynk/splitbill/internal/models"

// Participant is one person as entered by the user.
type Participant struct {
	Name string `json:"name"`

	// Amount pins the participant to an explicit share when set. It is raw
	// user text and goes through the same parser as the ledger.
	Amount string `json:"amount,omitempty"`
}

// CalculateSplitRequest proposes a bill to split.
type CalculateSplitRequest struct {
	// Total is the raw bill total as typed.
	Total        string        `json:"total"`
	Participants []Participant `json:"participants"`
}

// CalculateSplitResponse carries the shares in participant order.
type CalculateSplitResponse struct {
	People []models.Person `json:"people"`
}

// SaveBillRequest saves a bill to history.
type SaveBillRequest struct {
	// BillName may be empty; the service then names the bill after its
	// participants before saving.
	BillName     string        `json:"billName"`
	Total        string        `json:"total"`
	Participants []Participant `json:"participants"`
}

// SaveBillResponse returns the bill as stored.
type SaveBillResponse struct {
	Bill models.Bill `json:"bill"`
}

type ListBillsRequest struct{}

// ListBillsResponse lists history in save order.
type ListBillsResponse struct {
	Bills []models.Bill `json:"bills"`
}

type ClearHistoryRequest struct{}

type ClearHistoryResponse struct{}
