package dto

// TransferNotificationRequest is the ledger's report of a transfer touching the vault
type TransferNotificationRequest struct {
	TransferID string `json:"transferId"`
	From       string `json:"from" binding:"required"`
	To         string `json:"to" binding:"required"`
	Issuer     string `json:"issuer"` // Token contract; defaults to the authenticated caller
	Quantity   string `json:"quantity" binding:"required"` // e.g. "100.0000 TOK"
	Memo       string `json:"memo"`
	Repeat     *bool  `json:"repeat,omitempty"`
}

// DepositResponse tells the ledger what the vault did with the transfer
type DepositResponse struct {
	Applicable bool            `json:"applicable"`
	Replayed   bool            `json:"replayed"`
	Record     *RecordResponse `json:"record,omitempty"`
}
