package api

type CreatePeriodRequest struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

type CreatePeriodResponse struct {
	Period Period `json:"period"`
}

type GetPeriodRequest struct {
	PeriodID int64 `json:"period_id"`
}

type GetPeriodResponse struct {
	Period Period `json:"period"`
}

type ListPeriodsRequest struct{}

type ListPeriodsResponse struct {
	Periods []Period `json:"periods"`
}
