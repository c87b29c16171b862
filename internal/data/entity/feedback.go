package entity

import "time"

type Feedback struct {
	FeedbackID     int64     `json:"feedbackId"`
	Guest          Guest     `json:"guest"`
	Content        string    `json:"content"`
	SubmissionDate time.Time `json:"submissionDate"`
}
