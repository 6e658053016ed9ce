package models

// ClickTestResult is returned by the diagnostic click tester.
type ClickTestResult struct {
	Code          string `json:"code"`
	PreviousCount int64  `json:"previousCount"`
	NewCount      int64  `json:"newCount"`
}
