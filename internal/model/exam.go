package model

import "time"

type Exam struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Grade     *float64  `json:"grade"` // nil until the result is recorded
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
