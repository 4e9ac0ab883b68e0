package dto

type ReasonRequest struct {
	Reason string `json:"reason"`
}

type ResolveRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=complete cancel"`
	Note    string `json:"note"`
}

type SubmitRequest struct {
	ConditionReport string `json:"condition_report"`
}

// CaptureForm is the multipart form of a single captured photo.
type CaptureForm struct {
	Lat     *float64 `form:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lng     *float64 `form:"lng" binding:"omitempty,gte=-180,lte=180"`
	TakenAt string   `form:"taken_at"`
}
