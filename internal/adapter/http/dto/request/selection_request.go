package request

// SelectProposalRequest is the payload of PUT /telas/:viewId/selecao.
type SelectProposalRequest struct {
	ProposalID int64 `json:"propostaId" binding:"required,gt=0"`
}
