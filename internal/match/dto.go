package match

// DTOs for API requests/responses

type RankRequestDTO struct {
    CandidateIDs []int64 `json:"candidate_ids,omitempty"`
    TopN         int     `json:"top_n,omitempty" validate:"omitempty,min=1,max=50"`
    MinScore     float64 `json:"min_score,omitempty" validate:"omitempty,min=0,max=100"`
}
