package dto

// TranscriptionResponse is the body of a successful POST /transcribe.
type TranscriptionResponse struct {
	Transcription string `json:"transcription" example:"Bonjour à tous"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp int64  `json:"timestamp" example:"1735689600"`
}
