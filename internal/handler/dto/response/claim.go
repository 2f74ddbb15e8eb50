package response

import (
	"time"

	"korvo/internal/usecase/readmodel"
)

type ClaimResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	BusinessID   int64     `json:"businessId"`
	BusinessName string    `json:"businessName"`
	Title        string    `json:"title"`
	Value        string    `json:"value"`
	ClaimedAt    time.Time `json:"claimedAt"`
}

type StagedClaimResponse struct {
	Kind             string `json:"kind"`
	Title            string `json:"title"`
	Value            string `json:"value"`
	Cost             int    `json:"cost"`
	BusinessID       int64  `json:"businessId"`
	BusinessName     string `json:"businessName"`
	BalanceBefore    int    `json:"balanceBefore"`
	ProjectedBalance int    `json:"projectedBalance"`
}

type FlowResponse struct {
	State  string               `json:"state"`
	Staged *StagedClaimResponse `json:"staged,omitempty"`
}

type ClaimResultResponse struct {
	Claim      ClaimResponse `json:"claim"`
	NewBalance int           `json:"newBalance"`
}

type ProofResponse struct {
	Code         string    `json:"code"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Value        string    `json:"value"`
	BusinessName string    `json:"businessName"`
	ClaimedAt    time.Time `json:"claimedAt"`
}

func FromClaimView(v *readmodel.ClaimView) *ClaimResponse {
	res := ClaimResponse(*v)
	return &res
}

func FromClaimList(views []readmodel.ClaimView) []*ClaimResponse {
	res := make([]*ClaimResponse, len(views))
	for i := range views {
		res[i] = FromClaimView(&views[i])
	}
	return res
}

func FromFlowView(v *readmodel.FlowView) *FlowResponse {
	res := &FlowResponse{State: v.State}
	if v.Staged != nil {
		staged := StagedClaimResponse(*v.Staged)
		res.Staged = &staged
	}
	return res
}

func FromClaimResult(v *readmodel.ClaimResultView) *ClaimResultResponse {
	return &ClaimResultResponse{
		Claim:      ClaimResponse(v.Claim),
		NewBalance: v.NewBalance,
	}
}

func FromProofView(v *readmodel.ProofView) *ProofResponse {
	res := ProofResponse(*v)
	return &res
}
