// models/predict_request.go
package models

// PredictRequest is the body the prediction backend expects on POST /predict.
// Stock may be a raw ticker or a company name; resolution happens backend-side.
type PredictRequest struct {
	Stock string `json:"stock"`
}

// ErrorResponse is the error envelope the backend returns on non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
