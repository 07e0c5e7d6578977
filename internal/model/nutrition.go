package model

// AnalyzeRequest is the body of POST /analyze.
// Query is a pointer so an empty string is accepted while a missing field is not.
type AnalyzeRequest struct {
	Query *string `json:"query" binding:"required"`
}

// NutritionEstimate is the shape the model is asked to produce.
// It is not enforced; the handler relays the model's JSON as-is.
type NutritionEstimate struct {
	ItemName  string  `json:"item_name"`
	Calories  int     `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	HealthTip string  `json:"health_tip"`
}

// HealthStatus is the body of GET /.
type HealthStatus struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

// ErrorResponse carries the error detail for non-2xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
